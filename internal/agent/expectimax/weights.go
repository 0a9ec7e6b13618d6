// Package expectimax implements a depth-limited expectimax search over
// 2048 boards: MAX nodes pick the best of the four moves, CHANCE nodes
// average over possible tile spawns, and a weighted heuristic scores the
// leaves. The search never mutates the board it is given.
package expectimax

// Weights holds the multipliers for the six board features the
// evaluator combines. EmptyCells must dominate the other weights by
// orders of magnitude: tile-space flexibility outranks any positional
// feature, and shrinking that ratio changes how the agent plays.
type Weights struct {
	Monotonicity   float64
	Smoothness     float64
	EmptyCells     float64
	MaxCorner      float64
	MergePotential float64
	BorderPenalty  float64
}

// DefaultWeights returns the reference weighting.
func DefaultWeights() Weights {
	return Weights{
		Monotonicity:   1.0,
		Smoothness:     1.0,
		EmptyCells:     100000.0,
		MaxCorner:      10.0,
		MergePotential: 1.0,
		BorderPenalty:  0.1,
	}
}
