package config

import (
	_ "embed"
)

//go:embed defaults/e2048.yaml
var defaultYAML []byte

// Default returns the reference configuration: a 4x4 board with
// standard tiles, depth-3 search, and the tuned evaluator weights.
func Default() Config {
	return Config{
		Game: GameConfig{
			Size:     4,
			Mode:     "standard",
			WinTile:  2048,
			MaxMoves: 10000,
		},
		Search: SearchConfig{
			Depth:       3,
			RewardCoeff: 0.1,
			SampleLimit: 6,
		},
		Weights: WeightsConfig{
			Monotonicity:   1.0,
			Smoothness:     1.0,
			EmptyCells:     100000.0,
			MaxCorner:      10.0,
			MergePotential: 1.0,
			BorderPenalty:  0.1,
		},
		Bench: BenchConfig{
			Games:      10,
			Thresholds: []int{128, 256, 512, 1024, 2048, 4096},
		},
		Storage: StorageConfig{
			Path: "~/.e2048/results.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
