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

	// Save some results
	if _, err := store.SaveResult("tetris", 1000, 2, 12, 95); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("tetris", 500, 1, 4, 60); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("tetris", 2000, 3, 25, 180); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Different game
	if _, err := store.SaveResult("tetris_sprint", 4200, 5, 40, 240); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Retrieve top results for marathon
	results, err := store.TopResults("tetris", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted by score descending
	if results[0].Score != 2000 {
		t.Errorf("Expected highest score to be 2000, got %d", results[0].Score)
	}
	if results[1].Score != 1000 {
		t.Errorf("Expected second score to be 1000, got %d", results[1].Score)
	}
	if results[2].Score != 500 {
		t.Errorf("Expected third score to be 500, got %d", results[2].Score)
	}

	// The extra columns come back intact
	if results[0].Level != 3 || results[0].Lines != 25 || results[0].DurationSecs != 180 {
		t.Errorf("Top result fields wrong: %+v", results[0])
	}

	// Retrieve top results for sprint
	sprintResults, err := store.TopResults("tetris_sprint", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(sprintResults) != 1 {
		t.Errorf("Expected 1 sprint result, got %d", len(sprintResults))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 results
	for i := 0; i < 5; i++ {
		store.SaveResult("tetris", (i+1)*100, 1, i, 30)
	}

	// Request only top 3
	results, err := store.TopResults("tetris", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}

	// Should be 500, 400, 300 (top 3)
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreBestSprints(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult("tetris_sprint", 4000, 5, 40, 300)
	store.SaveResult("tetris_sprint", 3800, 5, 40, 150)
	store.SaveResult("tetris_sprint", 4100, 5, 40, 210)

	results, err := store.BestSprints("tetris_sprint", 10)
	if err != nil {
		t.Fatalf("BestSprints() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 sprint results, got %d", len(results))
	}

	// Ordered by duration ascending: the fastest run wins.
	if results[0].DurationSecs != 150 || results[1].DurationSecs != 210 || results[2].DurationSecs != 300 {
		t.Errorf("Sprints not ordered by duration: %v", results)
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

	// No results yet
	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add results
	store.SaveResult("tetris", 100, 1, 1, 30)
	store.SaveResult("tetris", 300, 1, 3, 90)
	store.SaveResult("tetris", 200, 1, 2, 60)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult("tetris", 100, 1, 1, 30)
	store.SaveResult("tetris", 200, 1, 2, 60)
	store.SaveResult("tetris_sprint", 300, 1, 3, 90)

	// Clear only marathon results
	if err := store.ClearResults("tetris"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	marathonResults, _ := store.TopResults("tetris", 10)
	if len(marathonResults) != 0 {
		t.Errorf("Expected 0 marathon results after clear, got %d", len(marathonResults))
	}

	sprintResults, _ := store.TopResults("tetris_sprint", 10)
	if len(sprintResults) != 1 {
		t.Errorf("Sprint results should not be affected by clearing marathon")
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult("tetris", 100, 1, 5, 30)
	store.SaveResult("tetris", 300, 2, 15, 90)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalLines != 20 {
		t.Errorf("TotalLines = %d, want 20", stats.TotalLines)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult("tetris", 100, 1, 5, 30)
	store.SaveResult("tetris", 300, 2, 15, 90)
	store.SaveResult("tetris_sprint", 4200, 5, 40, 240)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 modes, got %d", len(stats))
	}

	marathon, ok := stats["tetris"]
	if !ok {
		t.Fatal("Missing marathon stats")
	}
	if marathon.GamesCount != 2 || marathon.HighScore != 300 || marathon.TotalLines != 20 {
		t.Errorf("Marathon stats wrong: %+v", marathon)
	}
	if marathon.LastPlayed.IsZero() {
		t.Error("Marathon LastPlayed not populated")
	}

	sprint, ok := stats["tetris_sprint"]
	if !ok {
		t.Fatal("Missing sprint stats")
	}
	if sprint.GamesCount != 1 || sprint.HighScore != 4200 {
		t.Errorf("Sprint stats wrong: %+v", sprint)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Verify nested directory creation
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
