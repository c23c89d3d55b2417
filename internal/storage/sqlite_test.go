package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	runs := []RunRecord{
		{Seed: "alpha", Floors: 3, Turns: 410, Score: 1200, Outcome: OutcomeLost},
		{Seed: "alpha", Floors: 5, Turns: 700, Score: 2100, Outcome: OutcomeWon},
		{Seed: "beta", Floors: 1, Turns: 90, Score: 300, Outcome: OutcomeLost},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending by score
	if top[0].Score != 2100 || top[1].Score != 1200 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Seed != "alpha" || top[0].Outcome != OutcomeWon {
		t.Errorf("Best run fields wrong: %+v", top[0])
	}

	bySeed, err := store.RunsBySeed("alpha")
	if err != nil {
		t.Fatalf("RunsBySeed() failed: %v", err)
	}
	if len(bySeed) != 2 {
		t.Errorf("Expected 2 alpha runs, got %d", len(bySeed))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Seed: "s", Score: (i + 1) * 100, Outcome: OutcomeLost})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreBestScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty table, got %d", best)
	}

	store.SaveRun(RunRecord{Seed: "s", Score: 100, Outcome: OutcomeLost})
	store.SaveRun(RunRecord{Seed: "s", Score: 300, Outcome: OutcomeWon})
	store.SaveRun(RunRecord{Seed: "s", Score: 200, Outcome: OutcomeLost})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
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

	store.SaveRun(RunRecord{Seed: "s", Score: 100, Outcome: OutcomeLost})
	store.SaveRun(RunRecord{Seed: "s", Score: 200, Outcome: OutcomeWon})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
}

func TestStoreRunStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunRecord{Seed: "s", Floors: 5, Turns: 600, Score: 2000, Outcome: OutcomeWon})
	store.SaveRun(RunRecord{Seed: "s", Floors: 2, Turns: 150, Score: 400, Outcome: OutcomeLost})

	stats, err := store.GetRunStats()
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.WinsCount != 1 {
		t.Errorf("WinsCount = %d, want 1", stats.WinsCount)
	}
	if stats.BestScore != 2000 {
		t.Errorf("BestScore = %d, want 2000", stats.BestScore)
	}
	if stats.TotalTurns != 750 {
		t.Errorf("TotalTurns = %d, want 750", stats.TotalTurns)
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
