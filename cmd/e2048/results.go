package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/expectimax-2048/internal/storage"
)

var (
	flagResultsLimit int
	flagResultsBest  string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded games",
	Long: `Display recently recorded games, newest first. With --best, show
the top-scoring games for one agent instead.

Examples:
  e2048 results
  e2048 results --limit 50
  e2048 results --best expectimax
  e2048 results clear random`,
	Run: runResults,
}

var resultsClearCmd = &cobra.Command{
	Use:   "clear <agent>",
	Short: "Delete recorded games for an agent",
	Args:  cobra.ExactArgs(1),
	Run:   runResultsClear,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 20, "Maximum games to show")
	resultsCmd.Flags().StringVar(&flagResultsBest, "best", "", "Show the best games for this agent")
	resultsCmd.AddCommand(resultsClearCmd)
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var entries []storage.RunEntry
	if flagResultsBest != "" {
		entries, err = store.BestRuns(flagResultsBest, flagResultsLimit)
	} else {
		entries, err = store.RecentRuns(flagResultsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagResultsBest != "" {
		fmt.Printf("Best games - %s\n", flagResultsBest)
	} else {
		fmt.Println("Recent games")
	}
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'e2048 play' or 'e2048 bench' to record some.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-5s  %-8s  %-8s  %-8s  %-6s  %-4s  %s\n",
		"Agent", "Board", "Mode", "Score", "Max tile", "Moves", "Won", "Date")
	fmt.Printf("  %-16s  %-5s  %-8s  %-8s  %-8s  %-6s  %-4s  %s\n",
		"-----", "-----", "----", "-----", "--------", "-----", "---", "----")

	// Print runs
	for _, e := range entries {
		won := "no"
		if e.Won {
			won = "yes"
		}
		board := fmt.Sprintf("%dx%d", e.Size, e.Size)
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-5s  %-8s  %-8d  %-8d  %-6d  %-4s  %s\n",
			e.Agent, board, e.Mode, e.Score, e.MaxTile, e.Moves, won, dateStr)
	}
}

func runResultsClear(cmd *cobra.Command, args []string) {
	agentName := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearRuns(agentName); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Cleared recorded games for %s.\n", agentName)
}
