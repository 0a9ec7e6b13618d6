// Package agent defines the move-selection interface and a global
// registry of agent factories. Agents register themselves in init()
// functions, allowing the CLI to discover and instantiate them without
// hardcoded dependencies.
package agent

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/expectimax-2048/internal/agent/expectimax"
	"github.com/vovakirdan/expectimax-2048/internal/game"
)

// Agent selects moves for a running game. Implementations contain pure
// decision logic with no I/O; the runner owns the game loop, spawning,
// and termination.
type Agent interface {
	// Name returns the identifier the agent was created under.
	// Used for CLI output and result storage.
	Name() string

	// ChooseMove picks a direction for the board. The second return is
	// false when no direction changes the board, which ends the game.
	ChooseMove(b game.Board) (game.Direction, bool)
}

// Config carries the knobs a factory may honor when building an agent.
// Zero values mean "use the preset default"; agents ignore fields that
// do not apply to them.
type Config struct {
	// Seed drives any randomness the agent owns. Zero seeds from the
	// clock.
	Seed int64

	// Depth overrides the preset search depth when positive.
	Depth int

	// Distribution tells search agents which tiles can spawn. It must
	// match the distribution the game itself spawns from; nil means the
	// standard 2/4 split.
	Distribution game.TileDistribution

	// Weights overrides the evaluator weights when non-nil.
	Weights *expectimax.Weights

	// RewardCoeff overrides the per-move score shaping when non-nil.
	// An explicit zero disables shaping.
	RewardCoeff *float64

	// SampleLimit overrides the chance-node sampling cap when positive.
	SampleLimit int
}

// Info contains metadata about a registered agent.
type Info struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of an agent.
type Factory func(cfg Config) (Agent, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds an agent factory to the registry.
// Typically called from an init() function.
// Panics if an agent with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("agent: %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered agents, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new agent by its name.
// Returns an error if the name is not registered.
func Create(name string, cfg Config) (Agent, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("agent: unknown agent %q", name)
	}

	return f(cfg)
}

// Exists checks if an agent with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
