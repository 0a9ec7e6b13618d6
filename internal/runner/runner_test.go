package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/expectimax-2048/internal/agent"
	"github.com/vovakirdan/expectimax-2048/internal/game"
)

// scriptedAgent insists on one direction forever, legal or not.
type scriptedAgent struct {
	dir game.Direction
}

func (a scriptedAgent) Name() string { return "scripted" }

func (a scriptedAgent) ChooseMove(game.Board) (game.Direction, bool) {
	return a.dir, true
}

func TestPlayRandomAgentToCompletion(t *testing.T) {
	res, err := Play(agent.NewRandom(7), Options{
		Size: 3,
		Rand: rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	if res.Moves == 0 {
		t.Error("Moves = 0, want at least one")
	}
	if !res.Final.IsTerminal() {
		t.Errorf("final board not terminal:\n%s", res.Final)
	}

	// a full board with no merges cannot be all twos
	if res.MaxTile < 4 {
		t.Errorf("MaxTile = %d, want >= 4", res.MaxTile)
	}
	if res.Final.MaxTile() != res.MaxTile {
		t.Errorf("MaxTile = %d, board says %d", res.MaxTile, res.Final.MaxTile())
	}
}

func TestPlayStopsWhenAgentRepeatsDeadMove(t *testing.T) {
	// an agent stuck on one direction eventually proposes a move that
	// changes nothing; the loop must end instead of spinning
	res, err := Play(scriptedAgent{dir: game.DirLeft}, Options{
		Size:     3,
		MaxMoves: 500,
		Rand:     rand.New(rand.NewSource(11)),
	})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	if res.Moves >= 500 {
		t.Errorf("Moves = %d, want the game cut short", res.Moves)
	}
}

func TestPlayHonorsMoveCap(t *testing.T) {
	res, err := Play(agent.NewRandom(3), Options{
		Size:     4,
		MaxMoves: 5,
		Rand:     rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	if res.Moves != 5 {
		t.Errorf("Moves = %d, want 5", res.Moves)
	}
}

func TestPlayMoveObserver(t *testing.T) {
	var moves []int
	var last game.Board

	res, err := Play(agent.NewRandom(8), Options{
		Size:     3,
		MaxMoves: 40,
		Rand:     rand.New(rand.NewSource(8)),
		OnMove: func(move int, b game.Board) {
			moves = append(moves, move)
			last = b
		},
	})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	if len(moves) != res.Moves {
		t.Fatalf("observer saw %d moves, game made %d", len(moves), res.Moves)
	}
	for i, m := range moves {
		if m != i+1 {
			t.Errorf("move %d reported as %d", i+1, m)
		}
	}
	if !last.Equal(res.Final) {
		t.Errorf("last observed board differs from final:\n%s\nvs\n%s", last, res.Final)
	}
}

func TestPlayDeterministicWithSeed(t *testing.T) {
	play := func() GameResult {
		t.Helper()
		a, err := agent.Create("expectimax_fast", agent.Config{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		res, err := Play(a, Options{
			Size: 3,
			Rand: rand.New(rand.NewSource(42)),
		})
		if err != nil {
			t.Fatalf("Play: %v", err)
		}
		return res
	}

	first := play()
	second := play()

	if first.Score != second.Score || first.Moves != second.Moves || first.MaxTile != second.MaxTile {
		t.Errorf("seeded games diverged: %+v vs %+v", first, second)
	}
	if !first.Final.Equal(second.Final) {
		t.Errorf("seeded games ended on different boards:\n%s\nvs\n%s", first.Final, second.Final)
	}
}

func TestPlayWinFlag(t *testing.T) {
	// every finished game has merged at least once, so a win target of
	// 4 is always met and an absurd one never is
	res, err := Play(agent.NewRandom(5), Options{
		Size:    3,
		WinTile: 4,
		Rand:    rand.New(rand.NewSource(5)),
	})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !res.Won {
		t.Errorf("Won = false with MaxTile %d and target 4", res.MaxTile)
	}

	res, err = Play(agent.NewRandom(5), Options{
		Size:    3,
		WinTile: 1 << 30,
		Rand:    rand.New(rand.NewSource(5)),
	})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.Won {
		t.Errorf("Won = true with MaxTile %d and target %d", res.MaxTile, 1<<30)
	}
}

func TestPlayRejectsBadSize(t *testing.T) {
	_, err := Play(agent.NewRandom(1), Options{Size: 1})
	if err == nil {
		t.Error("Play() accepted a one-cell board")
	}
}
