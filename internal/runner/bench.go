package runner

import (
	"fmt"
	"time"

	"github.com/vovakirdan/expectimax-2048/internal/agent"
)

// DefaultThresholds are the tile milestones a benchmark reports
// reach-rates for.
var DefaultThresholds = []int{128, 256, 512, 1024, 2048, 4096}

// BenchOptions configures a benchmark batch.
type BenchOptions struct {
	// Games is the number of games to play. Zero means 10.
	Games int

	// Game configures each individual game. The random source and
	// logger are shared across the whole batch.
	Game Options

	// Thresholds lists the tile milestones to report reach-rates for.
	// Nil means DefaultThresholds.
	Thresholds []int

	// OnResult, when set, observes each finished game in order.
	OnResult func(game int, res GameResult)
}

// Summary aggregates a benchmark batch.
type Summary struct {
	Agent    string
	Games    int
	AvgScore float64
	MinScore int
	MaxScore int
	AvgMoves float64
	BestTile int
	Wins     int
	WinRate  float64

	// TileRates maps each threshold to the fraction of games whose
	// final board reached it.
	TileRates map[int]float64

	Elapsed time.Duration
}

// Bench plays a batch of games with one agent and aggregates the
// results. The agent instance is reused across games, so stateful
// agents carry their random stream through the whole batch.
func Bench(a agent.Agent, opts BenchOptions) (Summary, error) {
	if opts.Games <= 0 {
		opts.Games = 10
	}
	if opts.Thresholds == nil {
		opts.Thresholds = DefaultThresholds
	}
	opts.Game = opts.Game.withDefaults()

	start := time.Now()

	summary := Summary{
		Agent:     a.Name(),
		Games:     opts.Games,
		TileRates: make(map[int]float64, len(opts.Thresholds)),
	}
	reached := make(map[int]int, len(opts.Thresholds))

	var totalScore, totalMoves int

	for i := 0; i < opts.Games; i++ {
		res, err := Play(a, opts.Game)
		if err != nil {
			return Summary{}, fmt.Errorf("game %d: %w", i+1, err)
		}

		totalScore += res.Score
		totalMoves += res.Moves

		if i == 0 || res.Score < summary.MinScore {
			summary.MinScore = res.Score
		}
		if res.Score > summary.MaxScore {
			summary.MaxScore = res.Score
		}
		if res.MaxTile > summary.BestTile {
			summary.BestTile = res.MaxTile
		}
		if res.Won {
			summary.Wins++
		}
		for _, th := range opts.Thresholds {
			if res.MaxTile >= th {
				reached[th]++
			}
		}

		opts.Game.Logger.Info("game finished",
			"agent", a.Name(), "game", i+1, "of", opts.Games,
			"score", res.Score, "max_tile", res.MaxTile, "moves", res.Moves, "won", res.Won)

		if opts.OnResult != nil {
			opts.OnResult(i+1, res)
		}
	}

	summary.AvgScore = float64(totalScore) / float64(opts.Games)
	summary.AvgMoves = float64(totalMoves) / float64(opts.Games)
	summary.WinRate = float64(summary.Wins) / float64(opts.Games)
	for _, th := range opts.Thresholds {
		summary.TileRates[th] = float64(reached[th]) / float64(opts.Games)
	}
	summary.Elapsed = time.Since(start)

	return summary, nil
}
