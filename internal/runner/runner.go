// Package runner drives complete games between an agent and the board,
// and aggregates batches of games into benchmark summaries.
package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/expectimax-2048/internal/agent"
	"github.com/vovakirdan/expectimax-2048/internal/game"
)

// Options configures a single game. Zero values fall back to the
// defaults of the classic game: 4x4 board, standard tiles, the 2048
// tile as the win condition, and a 10000 move cap.
type Options struct {
	Size         int
	Distribution game.TileDistribution
	MaxMoves     int
	WinTile      int

	// Rand drives tile spawning. Nil falls back to a time-seeded
	// source; share one source across games to replay a whole batch.
	Rand *rand.Rand

	// Logger receives per-move debug output and loop warnings. Nil
	// discards everything.
	Logger *log.Logger

	// OnMove, when set, observes the board after each applied move and
	// the spawn that follows it.
	OnMove func(move int, b game.Board)
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = game.DefaultSize
	}
	if o.Distribution == nil {
		o.Distribution = game.StandardDistribution{}
	}
	if o.MaxMoves <= 0 {
		o.MaxMoves = 10000
	}
	if o.WinTile <= 0 {
		o.WinTile = 2048
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// GameResult describes one finished game.
type GameResult struct {
	Score    int
	MaxTile  int
	Moves    int
	Won      bool
	Duration time.Duration
	Final    game.Board
}

// Play runs one game to completion: the agent picks a direction, the
// move is applied, and a tile spawns, until the board is terminal, the
// agent gives up, or the move cap is reached. Reaching the win tile
// does not stop the game; it is reported on the result afterwards.
func Play(a agent.Agent, opts Options) (GameResult, error) {
	opts = opts.withDefaults()

	start := time.Now()

	b, err := game.NewGame(opts.Size, opts.Distribution, opts.Rand)
	if err != nil {
		return GameResult{}, err
	}

	var result GameResult

	for result.Moves < opts.MaxMoves {
		if b.IsTerminal() {
			break
		}

		dir, ok := a.ChooseMove(b)
		if !ok {
			break
		}

		res, err := game.Apply(b, dir)
		if err != nil || !res.Changed {
			// A broken agent must not spin the loop forever
			opts.Logger.Warn("agent move does not change the board, ending game",
				"agent", a.Name(), "move", dir, "moves", result.Moves)
			break
		}

		result.Moves++
		result.Score += res.ScoreGained
		b = game.Spawn(res.Board, opts.Distribution, opts.Rand)

		opts.Logger.Debug("move applied",
			"n", result.Moves, "dir", dir, "gained", res.ScoreGained, "score", result.Score)

		if opts.OnMove != nil {
			opts.OnMove(result.Moves, b)
		}
	}

	result.MaxTile = b.MaxTile()
	result.Won = result.MaxTile >= opts.WinTile
	result.Duration = time.Since(start)
	result.Final = b

	return result, nil
}
