package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/expectimax-2048/internal/agent"
	"github.com/vovakirdan/expectimax-2048/internal/runner"
	"github.com/vovakirdan/expectimax-2048/internal/storage"
)

var (
	flagBenchGames    int
	flagBenchSize     int
	flagBenchMode     string
	flagBenchDepth    int
	flagBenchMaxMoves int
	flagBenchNoStore  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [agent]",
	Short: "Benchmark an agent over many games",
	Long: `Play a batch of games with the chosen agent and report aggregate
statistics: score spread, average moves, win rate, and how often each
tile milestone was reached. Every game is also recorded in the results
database unless --no-store is set.

Examples:
  e2048 bench
  e2048 bench random --games 50
  e2048 bench expectimax_fast --games 20 --size 3
  e2048 bench expectimax --mode modified --seed 7
  e2048 bench random --games 100 --no-store`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchGames, "games", 0, "Number of games (default from config)")
	benchCmd.Flags().IntVar(&flagBenchSize, "size", 0, "Board size (default from config)")
	benchCmd.Flags().StringVar(&flagBenchMode, "mode", "", "Tile distribution: standard or modified")
	benchCmd.Flags().IntVar(&flagBenchDepth, "depth", 0, "Search depth override")
	benchCmd.Flags().IntVar(&flagBenchMaxMoves, "max-moves", 0, "Move cap per game")
	benchCmd.Flags().BoolVar(&flagBenchNoStore, "no-store", false, "Do not record games in the results database")
}

func runBench(cmd *cobra.Command, args []string) {
	name := "expectimax"
	if len(args) == 1 {
		name = args[0]
	}
	requireAgent(name)

	cfg := loadConfig()
	if cmd.Flags().Changed("games") {
		cfg.Bench.Games = flagBenchGames
	}
	if cmd.Flags().Changed("size") {
		cfg.Game.Size = flagBenchSize
	}
	if cmd.Flags().Changed("mode") {
		cfg.Game.Mode = flagBenchMode
	}
	if cmd.Flags().Changed("max-moves") {
		cfg.Game.MaxMoves = flagBenchMaxMoves
	}

	acfg, err := agentConfig(cfg, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("depth") {
		acfg.Depth = flagBenchDepth
	}

	a, err := agent.Create(name, acfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating agent: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()

	var store *storage.Store
	if !flagBenchNoStore {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	opts := runner.BenchOptions{
		Games: cfg.Bench.Games,
		Game: runner.Options{
			Size:         cfg.Game.Size,
			Distribution: acfg.Distribution,
			MaxMoves:     cfg.Game.MaxMoves,
			WinTile:      cfg.Game.WinTile,
			Rand:         spawnRand(),
			Logger:       logger,
		},
		Thresholds: cfg.Bench.Thresholds,
	}
	if store != nil {
		opts.OnResult = func(game int, res runner.GameResult) {
			if _, err := store.SaveRun(storage.RunEntry{
				Agent:    name,
				Size:     cfg.Game.Size,
				Mode:     cfg.Game.Mode,
				Score:    res.Score,
				MaxTile:  res.MaxTile,
				Moves:    res.Moves,
				Won:      res.Won,
				Duration: res.Duration,
			}); err != nil {
				logger.Warn("could not save run", "game", game, "error", err)
			}
		}
	}

	summary, err := runner.Bench(a, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running benchmark: %v\n", err)
		os.Exit(1)
	}

	// Display the summary
	fmt.Printf("Benchmark: %s (%d games, %dx%d, %s tiles)\n",
		summary.Agent, summary.Games, cfg.Game.Size, cfg.Game.Size, cfg.Game.Mode)
	fmt.Println()
	fmt.Printf("  %-12s %.1f\n", "Avg score:", summary.AvgScore)
	fmt.Printf("  %-12s %d\n", "Min score:", summary.MinScore)
	fmt.Printf("  %-12s %d\n", "Max score:", summary.MaxScore)
	fmt.Printf("  %-12s %.1f\n", "Avg moves:", summary.AvgMoves)
	fmt.Printf("  %-12s %d\n", "Best tile:", summary.BestTile)
	fmt.Printf("  %-12s %d/%d (%.1f%%)\n", "Wins:", summary.Wins, summary.Games, summary.WinRate*100)
	fmt.Println()

	fmt.Println("  Tile reach rates:")
	thresholds := opts.Thresholds
	if thresholds == nil {
		thresholds = runner.DefaultThresholds
	}
	for _, th := range thresholds {
		fmt.Printf("    %5d: %5.1f%%\n", th, summary.TileRates[th]*100)
	}
	fmt.Println()
	fmt.Printf("  Total time: %s\n", summary.Elapsed.Round(time.Millisecond))
}
