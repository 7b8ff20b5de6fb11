package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blasters/internal/registry"
	"github.com/vovakirdan/tui-blasters/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Play counts are optional
	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Played")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "------")
	for _, g := range games {
		played := 0
		if st, ok := stats[g.ID]; ok {
			played = st.GamesCount
		}
		fmt.Printf("  %-*s  %-12s  %d\n", maxIDLen, g.ID, g.Title, played)
	}

	fmt.Println()
	fmt.Println("Run 'blasters play <id>' to play a game.")
}
