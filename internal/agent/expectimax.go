package agent

import (
	"math/rand"

	"github.com/vovakirdan/expectimax-2048/internal/agent/expectimax"
	"github.com/vovakirdan/expectimax-2048/internal/game"
)

// Expectimax adapts an expectimax.Searcher to the Agent interface under
// a preset name.
type Expectimax struct {
	name     string
	searcher *expectimax.Searcher
}

// NewExpectimax wraps a searcher built from the given options.
func NewExpectimax(name string, opts expectimax.Options) *Expectimax {
	return &Expectimax{
		name:     name,
		searcher: expectimax.New(opts),
	}
}

func (a *Expectimax) Name() string {
	return a.name
}

func (a *Expectimax) ChooseMove(b game.Board) (game.Direction, bool) {
	return a.searcher.ChooseMove(b)
}

// Searcher exposes the underlying searcher for callers that want full
// search results rather than just the chosen move.
func (a *Expectimax) Searcher() *expectimax.Searcher {
	return a.searcher
}

// searchOptions merges a preset depth with the per-run overrides.
func searchOptions(cfg Config, presetDepth int) expectimax.Options {
	opts := expectimax.DefaultOptions()
	opts.Depth = presetDepth

	if cfg.Depth > 0 {
		opts.Depth = cfg.Depth
	}
	if cfg.Distribution != nil {
		opts.Distribution = cfg.Distribution
	}
	if cfg.Weights != nil {
		opts.Weights = *cfg.Weights
	}
	if cfg.RewardCoeff != nil {
		opts.RewardCoeff = *cfg.RewardCoeff
	}
	if cfg.SampleLimit > 0 {
		opts.SampleLimit = cfg.SampleLimit
	}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(cfg.Seed))
	}

	return opts
}

func expectimaxFactory(name string, presetDepth int) Factory {
	return func(cfg Config) (Agent, error) {
		return NewExpectimax(name, searchOptions(cfg, presetDepth)), nil
	}
}

func init() {
	Register("expectimax", "expectimax search, depth 3", expectimaxFactory("expectimax", 3))
	Register("expectimax_fast", "expectimax search, depth 2", expectimaxFactory("expectimax_fast", 2))
	Register("expectimax_deep", "expectimax search, depth 4", expectimaxFactory("expectimax_deep", 4))
}
