package components

import (
	"strings"

	"github.com/yohamta/donburi"
)

// InputData is the key-state map: lowercase key name to pressed. It is
// written by press/release events and read once per frame.
type InputData struct {
	Keys map[string]bool
}

// Press records a key-down event.
func (in *InputData) Press(key string) {
	if in.Keys == nil {
		in.Keys = make(map[string]bool)
	}
	in.Keys[strings.ToLower(key)] = true
}

// Release records a key-up event.
func (in *InputData) Release(key string) {
	if in.Keys == nil {
		in.Keys = make(map[string]bool)
	}
	in.Keys[strings.ToLower(key)] = false
}

// AnyHeld reports whether any of the named keys is down.
func (in *InputData) AnyHeld(keys []string) bool {
	for _, k := range keys {
		if in.Keys[k] {
			return true
		}
	}
	return false
}

var Input = donburi.NewComponentType[InputData]()
