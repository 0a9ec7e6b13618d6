package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/expectimax-2048/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [agent]",
	Short: "Show aggregated agent statistics",
	Long: `Display aggregated statistics across all recorded games, either for
every agent or for a single one.

Examples:
  e2048 stats
  e2048 stats expectimax`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		printAgentStats(store, args[0])
		return
	}

	all, err := store.GetAllAgentStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Agent statistics")
	fmt.Println()

	// Print header
	fmt.Printf("  %-16s  %-6s  %-10s  %-10s  %-9s  %-9s  %s\n",
		"Agent", "Games", "High", "Avg score", "Avg moves", "Best tile", "Wins")
	fmt.Printf("  %-16s  %-6s  %-10s  %-10s  %-9s  %-9s  %s\n",
		"-----", "-----", "----", "---------", "---------", "---------", "----")

	for _, name := range names {
		s := all[name]
		fmt.Printf("  %-16s  %-6d  %-10d  %-10.1f  %-9.1f  %-9d  %d\n",
			s.Agent, s.GamesCount, s.HighScore, s.AvgScore, s.AvgMoves, s.BestTile, s.Wins)
	}
}

func printAgentStats(store *storage.Store, name string) {
	stats, err := store.GetAgentStats(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics - %s\n", name)
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'e2048 play %s' to record the first one.\n", name)
		return
	}

	winRate := float64(stats.Wins) / float64(stats.GamesCount) * 100

	fmt.Printf("  %-12s %d\n", "Games:", stats.GamesCount)
	fmt.Printf("  %-12s %d\n", "High score:", stats.HighScore)
	fmt.Printf("  %-12s %.1f\n", "Avg score:", stats.AvgScore)
	fmt.Printf("  %-12s %.1f\n", "Avg moves:", stats.AvgMoves)
	fmt.Printf("  %-12s %d\n", "Best tile:", stats.BestTile)
	fmt.Printf("  %-12s %d (%.1f%%)\n", "Wins:", stats.Wins, winRate)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  %-12s %s\n", "Last game:", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
