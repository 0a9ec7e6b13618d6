package game

import (
	"fmt"
	"math/rand"
)

// TileChance pairs a spawnable tile value with its probability.
type TileChance struct {
	Value int
	Prob  float64
}

// TileDistribution decides which tile values can spawn on a given board
// and how likely each one is. Implementations must be stateless: the
// same board always yields the same candidates, so a distribution can be
// shared safely between the live game and a search exploring it.
type TileDistribution interface {
	// Name returns the distribution identifier used in configs and logs.
	Name() string

	// Candidates returns the spawnable (value, probability) pairs for
	// the board. Probabilities sum to 1.
	Candidates(b Board) []TileChance
}

// StandardDistribution spawns 2 with probability 0.9 and 4 with
// probability 0.1, regardless of board state.
type StandardDistribution struct{}

// Name returns "standard".
func (StandardDistribution) Name() string { return "standard" }

// Candidates returns the fixed 90/10 split over {2, 4}.
func (StandardDistribution) Candidates(Board) []TileChance {
	return []TileChance{{Value: 2, Prob: 0.9}, {Value: 4, Prob: 0.1}}
}

// ModifiedDistribution spawns uniformly among all powers of two up to
// the board's current maximum tile (at least 2). Makes late-game boards
// considerably more volatile than the standard rules.
type ModifiedDistribution struct{}

// Name returns "modified".
func (ModifiedDistribution) Name() string { return "modified" }

// Candidates returns a uniform distribution over {2, 4, ..., M} where
// M is the current maximum tile, treated as at least 2.
func (ModifiedDistribution) Candidates(b Board) []TileChance {
	maxTile := b.MaxTile()
	if maxTile < 2 {
		maxTile = 2
	}

	var values []int
	for v := 2; v <= maxTile; v *= 2 {
		values = append(values, v)
	}

	prob := 1.0 / float64(len(values))
	chances := make([]TileChance, len(values))
	for i, v := range values {
		chances[i] = TileChance{Value: v, Prob: prob}
	}
	return chances
}

// ParseDistribution converts a distribution name into a TileDistribution.
// An empty name selects the standard distribution.
func ParseDistribution(name string) (TileDistribution, error) {
	switch name {
	case "standard", "":
		return StandardDistribution{}, nil
	case "modified":
		return ModifiedDistribution{}, nil
	default:
		return nil, fmt.Errorf("game: unknown tile distribution %q", name)
	}
}

// Spawn places one tile drawn from the distribution into a uniformly
// random empty cell and returns the resulting board. A full board is
// returned unchanged; callers detect that case through IsTerminal, not
// through Spawn failing.
func Spawn(b Board, dist TileDistribution, rng *rand.Rand) Board {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return b
	}

	value := pickValue(dist.Candidates(b), rng)
	cell := empty[rng.Intn(len(empty))]

	nb := b.Clone()
	nb.set(cell.X, cell.Y, value)
	return nb
}

// pickValue draws a tile value from weighted candidates.
func pickValue(chances []TileChance, rng *rand.Rand) int {
	roll := rng.Float64()
	acc := 0.0
	for _, c := range chances {
		acc += c.Prob
		if roll < acc {
			return c.Value
		}
	}
	// Guard against accumulated float error
	return chances[len(chances)-1].Value
}

// NewGame creates an empty board of the given size and seeds it with
// two spawned tiles.
func NewGame(size int, dist TileDistribution, rng *rand.Rand) (Board, error) {
	b, err := NewBoard(size)
	if err != nil {
		return Board{}, err
	}
	b = Spawn(b, dist, rng)
	b = Spawn(b, dist, rng)
	return b, nil
}
