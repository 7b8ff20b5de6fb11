package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blasters/internal/storage"
)

var bestCmd = &cobra.Command{
	Use:   "best <game>",
	Short: "Print the best score for a game",
	Long: `Print the best score ever recorded for the specified game.
A missing or unreadable database prints 0.

Examples:
  blasters best asteroids`,
	Args: cobra.ExactArgs(1),
	Run:  runBest,
}

func runBest(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustKnowGame(gameID)

	best := 0
	if store, err := storage.Open(flagDBPath); err == nil {
		if b, err := store.BestScore(storage.BestKey(gameID)); err == nil {
			best = b
		}
		store.Close()
	}
	fmt.Fprintln(os.Stdout, best)
}
