package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/expectimax-2048/internal/agent"
	"github.com/vovakirdan/expectimax-2048/internal/game"
	"github.com/vovakirdan/expectimax-2048/internal/runner"
	"github.com/vovakirdan/expectimax-2048/internal/storage"
)

var (
	flagPlaySize      int
	flagPlayMode      string
	flagPlayDepth     int
	flagPlayMaxMoves  int
	flagPlayShowEvery int
)

var playCmd = &cobra.Command{
	Use:   "play [agent]",
	Short: "Play one full game with an agent",
	Long: `Run a complete game with the chosen agent and print the outcome.
The agent defaults to "expectimax". Pass --log-level debug to watch
every move.

Examples:
  e2048 play
  e2048 play expectimax_deep
  e2048 play random --size 3
  e2048 play expectimax --mode modified --seed 42
  e2048 play expectimax --depth 4 --show-every 100`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlaySize, "size", 0, "Board size (default from config)")
	playCmd.Flags().StringVar(&flagPlayMode, "mode", "", "Tile distribution: standard or modified")
	playCmd.Flags().IntVar(&flagPlayDepth, "depth", 0, "Search depth override")
	playCmd.Flags().IntVar(&flagPlayMaxMoves, "max-moves", 0, "Move cap per game")
	playCmd.Flags().IntVar(&flagPlayShowEvery, "show-every", 0, "Print the board every N moves (0 = never)")
}

func runPlay(cmd *cobra.Command, args []string) {
	name := "expectimax"
	if len(args) == 1 {
		name = args[0]
	}
	requireAgent(name)

	cfg := loadConfig()
	if cmd.Flags().Changed("size") {
		cfg.Game.Size = flagPlaySize
	}
	if cmd.Flags().Changed("mode") {
		cfg.Game.Mode = flagPlayMode
	}
	if cmd.Flags().Changed("max-moves") {
		cfg.Game.MaxMoves = flagPlayMaxMoves
	}

	acfg, err := agentConfig(cfg, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("depth") {
		acfg.Depth = flagPlayDepth
	}

	a, err := agent.Create(name, acfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating agent: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()

	opts := runner.Options{
		Size:         cfg.Game.Size,
		Distribution: acfg.Distribution,
		MaxMoves:     cfg.Game.MaxMoves,
		WinTile:      cfg.Game.WinTile,
		Rand:         spawnRand(),
		Logger:       logger,
	}
	if flagPlayShowEvery > 0 {
		opts.OnMove = func(move int, b game.Board) {
			if move%flagPlayShowEvery == 0 {
				fmt.Printf("Move %d:\n%s\n\n", move, b)
			}
		}
	}

	res, err := runner.Play(a, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	// Display the outcome
	fmt.Printf("Agent: %s\n", a.Name())
	fmt.Println()
	fmt.Println(res.Final)
	fmt.Println()
	fmt.Printf("Score: %d   Max tile: %d   Moves: %d   Time: %s\n",
		res.Score, res.MaxTile, res.Moves, res.Duration.Round(time.Millisecond))
	if res.Won {
		fmt.Printf("Reached the %d tile!\n", cfg.Game.WinTile)
	} else {
		fmt.Println("Game over.")
	}

	// Record the run
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return
	}
	defer store.Close()

	prevHigh, _ := store.HighScore(name)

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
		logger.Warn("could not save run", "error", err)
		return
	}

	if prevHigh > 0 && res.Score > prevHigh {
		fmt.Printf("New high score for %s! (previous: %d)\n", name, prevHigh)
	}
}
