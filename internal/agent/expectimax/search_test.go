package expectimax

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/expectimax-2048/internal/game"
)

func TestSearchOpeningMove(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	s := New(Options{Depth: 1})
	res := s.Search(b)

	if !res.Found {
		t.Fatal("Search() found no move on an open board")
	}
	if res.Move != game.DirLeft {
		t.Errorf("Search() move = %v, want %v", res.Move, game.DirLeft)
	}

	// merging toward the top-left corner beats the mirror merge to the
	// right: same empties, bigger corner bonus, same reward
	want := 100000.0*15 + 10.0*16 + 0.1*4
	if math.Abs(res.Value-want) > 1e-6 {
		t.Errorf("Search() value = %v, want %v", res.Value, want)
	}

	// root plus one chance node per direction that changes the board
	if res.Nodes != 4 {
		t.Errorf("Search() nodes = %d, want 4", res.Nodes)
	}
}

func TestSearchNodeCountGrowsWithDepth(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	shallow := New(Options{Depth: 1}).Search(b)
	deep := New(Options{Depth: 2}).Search(b)

	if shallow.Nodes != 4 {
		t.Errorf("depth 1 nodes = %d, want 4", shallow.Nodes)
	}

	// left/right leave 15 empties (1+30 nodes each), down leaves 14
	// (1+28); with the root that is 1+31+31+29
	if deep.Nodes != 92 {
		t.Errorf("depth 2 nodes = %d, want 92", deep.Nodes)
	}
}

func TestSearchTieBreakKeepsFirstDirection(t *testing.T) {
	// up and left produce mirror-image boards with identical values, so
	// the earlier direction in canonical order must win
	b := mustBoard(t, [][]int{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 2},
	})

	res := New(Options{Depth: 1}).Search(b)

	if !res.Found {
		t.Fatal("Search() found no move")
	}
	if res.Move != game.DirUp {
		t.Errorf("Search() move = %v, want %v", res.Move, game.DirUp)
	}
}

func TestSearchTerminalBoard(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	res := New(DefaultOptions()).Search(b)

	if res.Found {
		t.Errorf("Search() found move %v on a terminal board", res.Move)
	}
	if res.Nodes != 1 {
		t.Errorf("Search() nodes = %d, want 1", res.Nodes)
	}
}

func TestSearchEmptyBoardHasNoMove(t *testing.T) {
	b, err := game.NewBoard(4)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	res := New(DefaultOptions()).Search(b)

	if res.Found {
		t.Errorf("Search() found move %v on an empty board", res.Move)
	}
	if res.Value != 100000.0*16 {
		t.Errorf("Search() value = %v, want %v", res.Value, 100000.0*16)
	}
}

func TestSearchDeterministicWithSeed(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 0, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 2, 0, 0},
	})

	// depth 4 sends the deeper chance layer through cell sampling
	first := New(Options{Depth: 4, Rand: rand.New(rand.NewSource(42))}).Search(b)
	second := New(Options{Depth: 4, Rand: rand.New(rand.NewSource(42))}).Search(b)

	if first.Move != second.Move || first.Value != second.Value || first.Nodes != second.Nodes {
		t.Errorf("seeded searches diverged: %+v vs %+v", first, second)
	}
	if !first.Found {
		t.Error("Search() found no move on an open board")
	}
}

func TestSearchDepthThreeIgnoresSeed(t *testing.T) {
	// at depth 3 every chance node either sits next to the root or runs
	// out of depth, so no sampling happens and the seed is irrelevant
	b := mustBoard(t, [][]int{
		{2, 0, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 2, 0, 0},
	})

	first := New(Options{Depth: 3, Rand: rand.New(rand.NewSource(1))}).Search(b)
	second := New(Options{Depth: 3, Rand: rand.New(rand.NewSource(99))}).Search(b)

	if first.Move != second.Move || first.Value != second.Value || first.Nodes != second.Nodes {
		t.Errorf("depth 3 searches diverged across seeds: %+v vs %+v", first, second)
	}
}

func TestChooseMoveMatchesSearch(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	s := New(Options{Depth: 2})
	res := s.Search(b)
	move, ok := s.ChooseMove(b)

	if ok != res.Found || move != res.Move {
		t.Errorf("ChooseMove() = %v, %v, want %v, %v", move, ok, res.Move, res.Found)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Options{})

	if s.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", s.Depth())
	}
	if s.dist == nil {
		t.Error("New() left distribution nil")
	}
	if s.sampleLimit != 6 {
		t.Errorf("sampleLimit = %d, want 6", s.sampleLimit)
	}
	if s.rng == nil {
		t.Error("New() left rng nil")
	}
}

func TestSampleCells(t *testing.T) {
	s := New(Options{SampleLimit: 6, Rand: rand.New(rand.NewSource(7))})

	cells := make([]game.Cell, 0, 12)
	for i := 0; i < 12; i++ {
		cells = append(cells, game.Cell{X: i % 4, Y: i / 4})
	}
	original := make([]game.Cell, len(cells))
	copy(original, cells)

	picked := s.sampleCells(cells)

	if len(picked) != 6 {
		t.Fatalf("sampleCells() returned %d cells, want 6", len(picked))
	}

	seen := make(map[game.Cell]bool)
	valid := make(map[game.Cell]bool)
	for _, c := range original {
		valid[c] = true
	}
	for _, c := range picked {
		if seen[c] {
			t.Errorf("sampleCells() repeated cell %+v", c)
		}
		seen[c] = true
		if !valid[c] {
			t.Errorf("sampleCells() invented cell %+v", c)
		}
	}

	for i, c := range cells {
		if c != original[i] {
			t.Fatal("sampleCells() mutated its input")
		}
	}
}
