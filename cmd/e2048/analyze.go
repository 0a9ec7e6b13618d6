package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/expectimax-2048/internal/agent/expectimax"
	"github.com/vovakirdan/expectimax-2048/internal/game"
)

var (
	flagAnalyzeDepth int
	flagAnalyzeSize  int
	flagAnalyzeMode  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [rows...]",
	Short: "Break down the search on a single position",
	Long: `Search one position at every depth up to --depth and show how the
chosen move, its value, and the explored node count evolve.

The position is given as one argument per row, cells comma-separated,
zero meaning empty. Without arguments a fresh game is dealt from the
seed.

Examples:
  e2048 analyze
  e2048 analyze --depth 4 --seed 42
  e2048 analyze 2,2,0,0 0,4,0,0 0,0,8,0 0,0,0,0
  e2048 analyze 2,2,2 0,4,0 0,0,8 --size 3`,
	Run: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&flagAnalyzeDepth, "depth", 0, "Deepest search to run (default from config)")
	analyzeCmd.Flags().IntVar(&flagAnalyzeSize, "size", 0, "Board size for dealt positions")
	analyzeCmd.Flags().StringVar(&flagAnalyzeMode, "mode", "", "Tile distribution: standard or modified")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if cmd.Flags().Changed("size") {
		cfg.Game.Size = flagAnalyzeSize
	}
	if cmd.Flags().Changed("mode") {
		cfg.Game.Mode = flagAnalyzeMode
	}

	maxDepth := cfg.Search.Depth
	if cmd.Flags().Changed("depth") {
		maxDepth = flagAnalyzeDepth
	}
	if maxDepth < 1 {
		fmt.Fprintln(os.Stderr, "Error: depth must be at least 1")
		os.Exit(1)
	}

	acfg, err := agentConfig(cfg, "expectimax")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var b game.Board
	if len(args) > 0 {
		b, err = parseBoard(args)
	} else {
		b, err = game.NewGame(cfg.Game.Size, acfg.Distribution, spawnRand())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Position:")
	fmt.Println()
	fmt.Println(b)
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %-6s  %-14s  %-9s  %s\n", "Depth", "Move", "Value", "Nodes", "Time")
	fmt.Printf("  %-5s  %-6s  %-14s  %-9s  %s\n", "-----", "----", "-----", "-----", "----")

	for depth := 1; depth <= maxDepth; depth++ {
		opts := expectimax.Options{
			Depth:        depth,
			Distribution: acfg.Distribution,
			Weights:      *acfg.Weights,
			RewardCoeff:  *acfg.RewardCoeff,
			SampleLimit:  acfg.SampleLimit,
		}
		if flagSeed != 0 {
			opts.Rand = rand.New(rand.NewSource(flagSeed))
		}

		res := expectimax.New(opts).Search(b)

		move := "-"
		if res.Found {
			move = res.Move.String()
		}
		fmt.Printf("  %-5d  %-6s  %-14.1f  %-9d  %s\n",
			depth, move, res.Value, res.Nodes, res.Elapsed)
	}

	if b.IsTerminal() {
		fmt.Println()
		fmt.Println("The position is terminal; values are static evaluations.")
	}
}

// parseBoard reads one argument per row, cells comma-separated.
func parseBoard(args []string) (game.Board, error) {
	rows := make([][]int, 0, len(args))
	for _, arg := range args {
		fields := strings.Split(arg, ",")
		row := make([]int, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return game.Board{}, fmt.Errorf("bad cell %q in row %q", field, arg)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return game.NewBoardFromRows(rows)
}
