package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge2048/internal/games/t2048"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long:  `Shows the campaign levels from the loaded configuration.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) {
	levels := t2048.LevelsFromConfig(gameConfig.Campaign.Levels)
	out := cmd.OutOrStdout()

	if len(levels) == 0 {
		fmt.Fprintln(out, "No levels configured.")
		return
	}

	fmt.Fprintln(out, "Campaign levels:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-3s  %-*s  %-6s  %s\n", "#", maxNameLen, "Name", "Target", "Spawn4")
	fmt.Fprintf(out, "  %-3s  %-*s  %-6s  %s\n", "-", maxNameLen, "----", "------", "------")

	// Print levels
	for _, l := range levels {
		fmt.Fprintf(out, "  %-3d  %-*s  %-6d  %.0f%%\n", l.ID, maxNameLen, l.Name, l.Target, l.Spawn4*100)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 't2048 play --mode campaign --level <n> <moves...>' to start at a level.")
}
