package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkfall-game/linkfall/internal/config"
	"github.com/linkfall-game/linkfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered game mode with its board size.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		b := cfg.Board(g.ID)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, g.ID, fmt.Sprintf("%dx%d", b.Width, b.Height), g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'linkfall play <id>' to play a mode.")
}
