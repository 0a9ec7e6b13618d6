package expectimax

import (
	"math"

	"github.com/vovakirdan/expectimax-2048/internal/game"
)

// Evaluator scores how desirable a board is, higher meaning better.
// It is a pure function of the board: total for any valid input,
// including all-zero and fully packed grids.
type Evaluator struct {
	weights Weights
}

// NewEvaluator creates an evaluator with the given feature weights.
func NewEvaluator(w Weights) *Evaluator {
	return &Evaluator{weights: w}
}

// Evaluate returns the weighted sum of all six board features.
func (e *Evaluator) Evaluate(b game.Board) float64 {
	w := e.weights
	return w.Monotonicity*Monotonicity(b) +
		w.Smoothness*Smoothness(b) +
		w.EmptyCells*EmptyCells(b) +
		w.MaxCorner*MaxCorner(b) +
		w.MergePotential*MergePotential(b) +
		w.BorderPenalty*BorderPenalty(b)
}

// Monotonicity rewards rows and columns whose non-zero tiles run in one
// direction. Each line scores the larger of its non-decreasing and
// non-increasing adjacent pair counts; zeros are skipped entirely and do
// not break a run.
func Monotonicity(b game.Board) float64 {
	size := b.Size()
	score := 0

	for y := 0; y < size; y++ {
		line := make([]int, 0, size)
		for x := 0; x < size; x++ {
			if v := b.At(x, y); v != 0 {
				line = append(line, v)
			}
		}
		score += monotonicPairs(line)
	}

	for x := 0; x < size; x++ {
		line := make([]int, 0, size)
		for y := 0; y < size; y++ {
			if v := b.At(x, y); v != 0 {
				line = append(line, v)
			}
		}
		score += monotonicPairs(line)
	}

	return float64(score)
}

// monotonicPairs returns max(count of non-decreasing adjacent pairs,
// count of non-increasing adjacent pairs). Lines shorter than two
// contribute nothing.
func monotonicPairs(line []int) int {
	if len(line) < 2 {
		return 0
	}

	increasing, decreasing := 0, 0
	for k := 0; k < len(line)-1; k++ {
		if line[k] <= line[k+1] {
			increasing++
		}
		if line[k] >= line[k+1] {
			decreasing++
		}
	}

	if increasing > decreasing {
		return increasing
	}
	return decreasing
}

// Smoothness penalizes neighboring tiles with dissimilar values. For
// every non-zero cell it subtracts the absolute difference of base-2
// logarithms against its right and down neighbors, so a smoother board
// scores closer to zero.
func Smoothness(b game.Board) float64 {
	size := b.Size()
	smoothness := 0.0

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := b.At(x, y)
			if v == 0 {
				continue
			}
			value := math.Log2(float64(v))

			// Check right neighbor
			if x < size-1 && b.At(x+1, y) != 0 {
				smoothness -= math.Abs(value - math.Log2(float64(b.At(x+1, y))))
			}
			// Check down neighbor
			if y < size-1 && b.At(x, y+1) != 0 {
				smoothness -= math.Abs(value - math.Log2(float64(b.At(x, y+1))))
			}
		}
	}

	return smoothness
}

// EmptyCells counts zero-valued cells.
func EmptyCells(b game.Board) float64 {
	size := b.Size()
	count := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if b.At(x, y) == 0 {
				count++
			}
		}
	}
	return float64(count)
}

// MaxCorner rewards keeping the maximum tile in a corner: four times its
// value in the top-left, twice its value in any other corner, nothing
// elsewhere. The first matching corner wins, establishing a fixed
// preference for the top-left.
func MaxCorner(b game.Board) float64 {
	n := b.Size()
	maxTile := b.MaxTile()

	switch {
	case b.At(0, 0) == maxTile:
		return float64(maxTile * 4)
	case b.At(n-1, 0) == maxTile:
		return float64(maxTile * 2)
	case b.At(0, n-1) == maxTile:
		return float64(maxTile * 2)
	case b.At(n-1, n-1) == maxTile:
		return float64(maxTile * 2)
	default:
		return 0
	}
}

// MergePotential counts adjacent right or down pairs of equal non-zero
// tiles, each representing a merge available on the next move.
func MergePotential(b game.Board) float64 {
	n := b.Size()
	merges := 0

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := b.At(x, y)
			if v == 0 {
				continue
			}
			if x < n-1 && b.At(x+1, y) == v {
				merges++
			}
			if y < n-1 && b.At(x, y+1) == v {
				merges++
			}
		}
	}

	return float64(merges)
}

// BorderPenalty charges every non-zero tile its value times the squared
// distance to the nearest edge. Border tiles cost nothing; cost grows
// quadratically toward the center. The feature itself is negative, the
// weight applied to it stays positive.
func BorderPenalty(b game.Board) float64 {
	n := b.Size()
	penalty := 0

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := b.At(x, y)
			if v == 0 {
				continue
			}
			dist := min(y, x, n-1-y, n-1-x)
			penalty -= v * dist * dist
		}
	}

	return float64(penalty)
}
