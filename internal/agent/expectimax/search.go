package expectimax

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/expectimax-2048/internal/game"
)

// Options configures a Searcher. The zero value of a field falls back
// to the corresponding default, except RewardCoeff, which is honored
// as-is so shaping can be switched off entirely.
type Options struct {
	// Depth is the number of plies explored before the evaluator takes
	// over. Typical values are 2-4; deeper is stronger but slower.
	Depth int

	// Distribution decides which tiles can spawn at chance nodes. It
	// must match the distribution the live game uses, and must not
	// change while a search is running.
	Distribution game.TileDistribution

	// Weights feed the leaf evaluator.
	Weights Weights

	// RewardCoeff scales the score gained by a move before it is added
	// to the branch value at MAX nodes. An empirical tuning knob, not a
	// unit-for-unit score accounting.
	RewardCoeff float64

	// SampleLimit caps how many empty cells a deep chance node expands.
	SampleLimit int

	// Rand drives chance-node sampling. Searches with the same seed and
	// inputs are identical; nil falls back to a time-seeded source.
	Rand *rand.Rand
}

// DefaultOptions returns the reference search configuration.
func DefaultOptions() Options {
	return Options{
		Depth:       3,
		Weights:     DefaultWeights(),
		RewardCoeff: 0.1,
		SampleLimit: 6,
	}
}

// Searcher runs depth-limited expectimax searches. It is single
// threaded: each search runs to completion on the calling goroutine and
// every recursive call works on its own board copy.
type Searcher struct {
	evaluator   *Evaluator
	depth       int
	dist        game.TileDistribution
	rewardCoeff float64
	sampleLimit int
	rng         *rand.Rand
}

// New creates a Searcher from the given options.
func New(opts Options) *Searcher {
	if opts.Depth <= 0 {
		opts.Depth = 3
	}
	if opts.Distribution == nil {
		opts.Distribution = game.StandardDistribution{}
	}
	if opts.Weights == (Weights{}) {
		opts.Weights = DefaultWeights()
	}
	if opts.SampleLimit <= 0 {
		opts.SampleLimit = 6
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Searcher{
		evaluator:   NewEvaluator(opts.Weights),
		depth:       opts.Depth,
		dist:        opts.Distribution,
		rewardCoeff: opts.RewardCoeff,
		sampleLimit: opts.SampleLimit,
		rng:         opts.Rand,
	}
}

// Depth returns the configured search depth.
func (s *Searcher) Depth() int {
	return s.depth
}

// Result describes one completed search.
type Result struct {
	Move    game.Direction
	Found   bool
	Value   float64
	Nodes   int
	Elapsed time.Duration
}

// ChooseMove returns the best direction for the board, or false when no
// move changes it.
func (s *Searcher) ChooseMove(b game.Board) (game.Direction, bool) {
	res := s.Search(b)
	return res.Move, res.Found
}

// Search runs a full search from the board and reports the chosen move
// together with its value and the work done. A board with no legal
// moves yields Found=false, never an error.
func (s *Searcher) Search(b game.Board) Result {
	start := time.Now()
	nodes := 0

	value, move, found := s.maxNode(b, s.depth, &nodes)

	return Result{
		Move:    move,
		Found:   found,
		Value:   value,
		Nodes:   nodes,
		Elapsed: time.Since(start),
	}
}

// maxNode picks the best of the four directions. Each surviving branch
// is valued as the chance-node expectation of its resulting board plus
// the immediate reward for the score the move gained. Ties keep the
// first direction in canonical order.
func (s *Searcher) maxNode(b game.Board, depth int, nodes *int) (float64, game.Direction, bool) {
	*nodes++

	if depth == 0 || b.IsTerminal() {
		return s.evaluator.Evaluate(b), 0, false
	}

	best := math.Inf(-1)
	var bestDir game.Direction
	found := false

	for _, dir := range game.Directions() {
		res, err := game.Apply(b, dir)
		if err != nil || !res.Changed {
			continue
		}

		value := s.chanceNode(res.Board, depth-1, nodes) + s.rewardCoeff*float64(res.ScoreGained)
		if value > best {
			best = value
			bestDir = dir
			found = true
		}
	}

	// No direction changes the board: fall back to the static evaluation
	if !found {
		return s.evaluator.Evaluate(b), 0, false
	}

	return best, bestDir, true
}

// chanceNode returns the expected value over possible tile spawns. Deep
// nodes with many empty cells expand only a random sample of them,
// each treated as equally likely; nodes adjacent to the root always
// expand every cell exactly.
func (s *Searcher) chanceNode(b game.Board, depth int, nodes *int) float64 {
	*nodes++

	if depth == 0 || b.IsTerminal() {
		return s.evaluator.Evaluate(b)
	}

	empty := b.EmptyCells()
	if len(empty) == 0 {
		return s.evaluator.Evaluate(b)
	}

	cells := empty
	cellProb := 1.0 / float64(len(empty))
	if len(empty) > s.sampleLimit && depth < s.depth-1 {
		cells = s.sampleCells(empty)
		cellProb = 1.0 / float64(s.sampleLimit)
	}

	chances := s.dist.Candidates(b)
	expected := 0.0

	for _, cell := range cells {
		for _, tc := range chances {
			value, _, _ := s.maxNode(b.WithTile(cell, tc.Value), depth-1, nodes)
			expected += value * cellProb * tc.Prob
		}
	}

	return expected
}

// sampleCells draws sampleLimit distinct cells without replacement.
func (s *Searcher) sampleCells(cells []game.Cell) []game.Cell {
	picked := make([]game.Cell, len(cells))
	copy(picked, cells)

	for i := 0; i < s.sampleLimit; i++ {
		j := i + s.rng.Intn(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}

	return picked[:s.sampleLimit]
}
