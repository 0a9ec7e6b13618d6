package agent

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/expectimax-2048/internal/game"
)

// Random picks a uniformly random direction among those that change the
// board. Mostly useful as a baseline for benchmarks.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random agent. A zero seed falls back to the
// clock, so two zero-seeded agents play different games.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) Name() string {
	return "random"
}

func (a *Random) ChooseMove(b game.Board) (game.Direction, bool) {
	legal := make([]game.Direction, 0, 4)
	for _, dir := range game.Directions() {
		if b.CanMove(dir) {
			legal = append(legal, dir)
		}
	}

	if len(legal) == 0 {
		return 0, false
	}

	return legal[a.rng.Intn(len(legal))], true
}

func init() {
	Register("random", "uniformly random legal move", func(cfg Config) (Agent, error) {
		return NewRandom(cfg.Seed), nil
	})
}
