// Package config provides YAML-based configuration loading for the
// game engine, the search agents, and benchmark runs.
package config

// Config contains all configuration for games, search, and storage.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Search  SearchConfig  `yaml:"search"`
	Weights WeightsConfig `yaml:"weights"`
	Bench   BenchConfig   `yaml:"bench"`
	Storage StorageConfig `yaml:"storage"`
}

// GameConfig defines the board and the rules of a single game.
type GameConfig struct {
	Size     int    `yaml:"size"`
	Mode     string `yaml:"mode"` // "standard" or "modified"
	WinTile  int    `yaml:"win_tile"`
	MaxMoves int    `yaml:"max_moves"`
}

// SearchConfig defines the expectimax search parameters.
type SearchConfig struct {
	Depth       int     `yaml:"depth"`
	RewardCoeff float64 `yaml:"reward_coeff"` // immediate-score shaping at decision nodes
	SampleLimit int     `yaml:"sample_limit"` // empty-cell cap at deep chance nodes
}

// WeightsConfig defines the evaluator feature weights.
type WeightsConfig struct {
	Monotonicity   float64 `yaml:"monotonicity"`
	Smoothness     float64 `yaml:"smoothness"`
	EmptyCells     float64 `yaml:"empty_cells"`
	MaxCorner      float64 `yaml:"max_corner"`
	MergePotential float64 `yaml:"merge_potential"`
	BorderPenalty  float64 `yaml:"border_penalty"`
}

// BenchConfig defines benchmark batch parameters.
type BenchConfig struct {
	Games      int   `yaml:"games"`
	Thresholds []int `yaml:"thresholds"` // tile milestones to report reach-rates for
}

// StorageConfig defines where results are persisted.
type StorageConfig struct {
	Path string `yaml:"path"` // "~" expands to the home directory
}
