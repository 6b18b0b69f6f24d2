package main

import (
	"fmt"

	"github.com/automoto/savetheworld/levels"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in levels",
	Long:  `Shows every built-in level with its platform and seed counts.`,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, headingStyle.Render("Levels:"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-5s  %-9s  %-5s  %s\n", "LEVEL", "PLATFORMS", "SEEDS", "BACKGROUND")
	for n := 1; n <= levels.Count(); n++ {
		l, err := levels.Get(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-5d  %-9d  %-5d  %s\n", n, len(l.Platforms), len(l.Collectibles), l.Background)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'savetheworld --level <n>' to start on a level.")
	return nil
}
