package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/maps"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List built-in maps",
	Long:  `Shows the maps bundled with the game. Use 'pacman play --map <id>' to pick one.`,
	Run:   runMaps,
}

func runMaps(cmd *cobra.Command, args []string) {
	list := maps.List()

	if len(list) == 0 {
		fmt.Println("No maps available.")
		return
	}

	fmt.Println("Available maps:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range list {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")

	for _, m := range list {
		size := fmt.Sprintf("%dx%d", m.Cols, m.Rows)
		marker := ""
		if m.ID == maps.DefaultID {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-7s  %s%s\n", maxIDLen, m.ID, size, m.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'pacman play --map <id>' to play a map.")
}
