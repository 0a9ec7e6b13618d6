// e2048 plays and benchmarks 2048 with search-based agents.
//
// Usage:
//
//	e2048 agents             - List available agents
//	e2048 play [agent]       - Play one full game with an agent
//	e2048 bench [agent]      - Benchmark an agent over many games
//	e2048 analyze [rows...]  - Break down the search on one position
//	e2048 results            - Show recorded games
//	e2048 stats [agent]      - Show aggregated agent statistics
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible games
//	--db <path>       - Set database path (default: ~/.e2048/results.db)
//	--config <path>   - Path to custom config YAML
//	--log-level <lvl> - Log verbosity: debug, info, warn, error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/expectimax-2048/internal/agent"
	"github.com/vovakirdan/expectimax-2048/internal/agent/expectimax"
	"github.com/vovakirdan/expectimax-2048/internal/config"
	"github.com/vovakirdan/expectimax-2048/internal/game"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "e2048",
	Short: "2048 agents - Play and benchmark 2048 in your terminal",
	Long: `e2048 runs the 2048 sliding-tile game with pluggable agents,
from a random baseline to depth-limited expectimax search.

Available commands:
  agents   - Show all available agents
  play     - Watch an agent play one full game
  bench    - Benchmark an agent over many games
  analyze  - Break down the search on a single position
  results  - View recorded games
  stats    - View aggregated agent statistics

Examples:
  e2048 agents
  e2048 play expectimax
  e2048 bench expectimax_fast --games 20
  e2048 analyze --depth 4
  e2048 stats expectimax`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.e2048/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log verbosity: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(statsCmd)
}

// newLogger builds the CLI logger honoring --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "e2048",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// loadConfig loads the YAML configuration honoring --config.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// spawnRand builds the tile-spawning source for --seed.
func spawnRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// agentConfig translates the loaded config into per-agent settings.
// The plain "expectimax" agent follows the configured search depth;
// the _fast and _deep presets keep their own depths.
func agentConfig(cfg config.Config, agentName string) (agent.Config, error) {
	dist, err := game.ParseDistribution(cfg.Game.Mode)
	if err != nil {
		return agent.Config{}, err
	}

	weights := expectimax.Weights{
		Monotonicity:   cfg.Weights.Monotonicity,
		Smoothness:     cfg.Weights.Smoothness,
		EmptyCells:     cfg.Weights.EmptyCells,
		MaxCorner:      cfg.Weights.MaxCorner,
		MergePotential: cfg.Weights.MergePotential,
		BorderPenalty:  cfg.Weights.BorderPenalty,
	}
	coeff := cfg.Search.RewardCoeff

	acfg := agent.Config{
		Seed:         flagSeed,
		Distribution: dist,
		Weights:      &weights,
		RewardCoeff:  &coeff,
		SampleLimit:  cfg.Search.SampleLimit,
	}
	if agentName == "expectimax" {
		acfg.Depth = cfg.Search.Depth
	}

	return acfg, nil
}

// requireAgent exits with a hint when the agent name is unknown.
func requireAgent(name string) {
	if !agent.Exists(name) {
		fmt.Fprintf(os.Stderr, "Error: unknown agent %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'e2048 agents' to see available agents.")
		os.Exit(1)
	}
}
