package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunEntry{
		{Agent: "expectimax", Size: 4, Mode: "standard", Score: 12000, MaxTile: 1024, Moves: 700, Won: false, Duration: 1500 * time.Millisecond},
		{Agent: "expectimax", Size: 4, Mode: "standard", Score: 24000, MaxTile: 2048, Moves: 1100, Won: true, Duration: 2500 * time.Millisecond},
		{Agent: "expectimax", Size: 4, Mode: "standard", Score: 6000, MaxTile: 512, Moves: 400, Won: false, Duration: 800 * time.Millisecond},
		{Agent: "random", Size: 4, Mode: "standard", Score: 1100, MaxTile: 128, Moves: 150, Won: false, Duration: 10 * time.Millisecond},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("expectimax", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}

	if len(best) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(best))
	}

	// Should be sorted descending
	if best[0].Score != 24000 || best[1].Score != 12000 || best[2].Score != 6000 {
		t.Errorf("Runs not in expected order: %v", best)
	}

	// Fields survive the round trip
	top := best[0]
	if top.Agent != "expectimax" || top.Size != 4 || top.Mode != "standard" {
		t.Errorf("Run identity mangled: %+v", top)
	}
	if top.MaxTile != 2048 || top.Moves != 1100 || !top.Won {
		t.Errorf("Run outcome mangled: %+v", top)
	}
	if top.Duration != 2500*time.Millisecond {
		t.Errorf("Expected duration 2.5s, got %v", top.Duration)
	}

	randomRuns, err := store.BestRuns("random", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(randomRuns) != 1 {
		t.Errorf("Expected 1 random run, got %d", len(randomRuns))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(RunEntry{Agent: "random", Size: 4, Mode: "standard", Score: (i + 1) * 100})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(recent))
	}

	// Newest first
	if recent[0].Score != 500 || recent[1].Score != 400 || recent[2].Score != 300 {
		t.Errorf("Runs not in recency order: %v", recent)
	}
}

func TestStoreBestRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 runs
	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Agent: "test", Size: 4, Mode: "standard", Score: (i + 1) * 100})
	}

	// Request only top 3
	best, err := store.BestRuns("test", 3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}

	if len(best) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(best))
	}

	// Should be 500, 400, 300 (top 3)
	if best[0].Score != 500 || best[1].Score != 400 || best[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", best)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	high, err := store.HighScore("expectimax")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty agent, got %d", high)
	}

	// Add runs
	store.SaveRun(RunEntry{Agent: "expectimax", Size: 4, Mode: "standard", Score: 100})
	store.SaveRun(RunEntry{Agent: "expectimax", Size: 4, Mode: "standard", Score: 300})
	store.SaveRun(RunEntry{Agent: "expectimax", Size: 4, Mode: "standard", Score: 200})

	high, err = store.HighScore("expectimax")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunEntry{Agent: "expectimax", Size: 4, Mode: "standard", Score: 100})
	store.SaveRun(RunEntry{Agent: "expectimax", Size: 4, Mode: "standard", Score: 200})
	store.SaveRun(RunEntry{Agent: "random", Size: 4, Mode: "standard", Score: 300})

	// Clear only expectimax runs
	err = store.ClearRuns("expectimax")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	// Expectimax should be empty
	emRuns, _ := store.BestRuns("expectimax", 10)
	if len(emRuns) != 0 {
		t.Errorf("Expected 0 expectimax runs after clear, got %d", len(emRuns))
	}

	// Random should still have runs
	randomRuns, _ := store.BestRuns("random", 10)
	if len(randomRuns) != 1 {
		t.Errorf("Random runs should not be affected by clearing expectimax")
	}
}

func TestStoreAgentStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunEntry{Agent: "expectimax", Size: 4, Mode: "standard", Score: 100, MaxTile: 128, Moves: 100, Won: false})
	store.SaveRun(RunEntry{Agent: "expectimax", Size: 4, Mode: "standard", Score: 300, MaxTile: 2048, Moves: 900, Won: true})
	store.SaveRun(RunEntry{Agent: "random", Size: 4, Mode: "standard", Score: 50, MaxTile: 64, Moves: 80, Won: false})

	stats, err := store.GetAgentStats("expectimax")
	if err != nil {
		t.Fatalf("GetAgentStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg score 200, got %v", stats.AvgScore)
	}
	if stats.AvgMoves != 500 {
		t.Errorf("Expected avg moves 500, got %v", stats.AvgMoves)
	}
	if stats.BestTile != 2048 {
		t.Errorf("Expected best tile 2048, got %d", stats.BestTile)
	}
	if stats.Wins != 1 {
		t.Errorf("Expected 1 win, got %d", stats.Wins)
	}

	// Agent with no runs
	empty, err := store.GetAgentStats("expectimax_deep")
	if err != nil {
		t.Fatalf("GetAgentStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	all, err := store.GetAllAgentStats()
	if err != nil {
		t.Fatalf("GetAllAgentStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 agents, got %d", len(all))
	}
	if all["random"] == nil || all["random"].GamesCount != 1 {
		t.Errorf("Random stats missing or wrong: %+v", all["random"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
