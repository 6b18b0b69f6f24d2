package config

import (
	"os"

	"github.com/charmbracelet/log"
)

// Log is the shared game logger.
var Log = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "savetheworld",
	ReportTimestamp: true,
})

// SetLogLevel parses a level name ("debug", "info", "warn", "error") and
// applies it to Log.
func SetLogLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}
