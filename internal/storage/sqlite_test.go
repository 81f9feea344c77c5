package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

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
	store := openTestStore(t)

	if _, err := store.SaveRun("stacker", 100, 10, 10); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("stacker", 50, 5, 5); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("stacker", 200, 20, 20); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Different game
	if _, err := store.SaveRun("stacker_zen", 500, 50, 50); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("stacker", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", runs[0].Score)
	}
	if runs[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", runs[1].Score)
	}
	if runs[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", runs[2].Score)
	}
	if runs[0].Height != 20 || runs[0].Blocks != 20 {
		t.Errorf("Run details not persisted: height=%v blocks=%d", runs[0].Height, runs[0].Blocks)
	}

	zenRuns, err := store.TopRuns("stacker_zen", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(zenRuns) != 1 {
		t.Errorf("Expected 1 zen run, got %d", len(zenRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("test", (i+1)*100, float64(i+1), i+1)
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("stacker")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun("stacker", 100, 10, 10)
	store.SaveRun("stacker", 300, 30, 30)
	store.SaveRun("stacker", 200, 20, 20)

	high, err = store.HighScore("stacker")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestHeight(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestHeight("stacker")
	if err != nil {
		t.Fatalf("BestHeight() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best height of 0 for empty game, got %v", best)
	}

	// A low-score run can still hold the height record
	store.SaveRun("stacker", 100, 42.0, 42)
	store.SaveRun("stacker", 300, 15.0, 15)

	best, err = store.BestHeight("stacker")
	if err != nil {
		t.Fatalf("BestHeight() failed: %v", err)
	}
	if best != 42.0 {
		t.Errorf("Expected best height of 42, got %v", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("stacker", 100, 10, 10)
	store.SaveRun("stacker", 200, 20, 20)
	store.SaveRun("stacker_zen", 300, 30, 30)

	if err := store.ClearRuns("stacker"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("stacker", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	// Zen runs should not be affected
	zenRuns, _ := store.TopRuns("stacker_zen", 10)
	if len(zenRuns) != 1 {
		t.Errorf("Zen runs should not be affected by clearing classic")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("stacker", 100, 10, 10)
	store.SaveRun("stacker", 300, 42, 42)
	store.SaveRun("stacker", 200, 20, 20)

	stats, err := store.GetGameStats("stacker")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, expected 3", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.BestHeight != 42 {
		t.Errorf("BestHeight = %v, expected 42", stats.BestHeight)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
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
