package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.flappy/flappy.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".flappy", "flappy.db")); err != nil {
		t.Errorf("Expected database under HOME: %v", err)
	}
}

func TestStoreBestScoreEmpty(t *testing.T) {
	store, _ := openTestStore(t)

	best, err := store.LoadBestScore()
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for a fresh database, got %d", best)
	}
}

func TestStoreBestScoreNeverDecreases(t *testing.T) {
	store, _ := openTestStore(t)

	steps := []struct {
		save int
		want int
	}{
		{5, 5},
		{3, 5},
		{12, 12},
		{0, 12},
	}

	for _, step := range steps {
		if err := store.SaveBestScore(step.save); err != nil {
			t.Fatalf("SaveBestScore(%d) failed: %v", step.save, err)
		}
		best, err := store.LoadBestScore()
		if err != nil {
			t.Fatalf("LoadBestScore() failed: %v", err)
		}
		if best != step.want {
			t.Errorf("After saving %d best = %d, expected %d", step.save, best, step.want)
		}
	}
}

func TestStoreBestScoreSurvivesReopen(t *testing.T) {
	store, dbPath := openTestStore(t)

	if err := store.SaveBestScore(42); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer reopened.Close()

	best, err := reopened.LoadBestScore()
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if best != 42 {
		t.Errorf("Expected 42 after reopen, got %d", best)
	}
}

func TestStoreBestScoreConcurrent(t *testing.T) {
	store, _ := openTestStore(t)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if err := store.SaveBestScore(score); err != nil {
				t.Errorf("SaveBestScore(%d) failed: %v", score, err)
			}
		}(i)
	}
	wg.Wait()

	best, err := store.LoadBestScore()
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if best != 20 {
		t.Errorf("Expected 20, got %d", best)
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store, _ := openTestStore(t)

	for _, r := range []RunRecord{
		{Score: 10, Ticks: 900, Seed: 1},
		{Score: 3, Ticks: 300, Seed: 2},
		{Score: 25, Ticks: 2100, Seed: 3},
		{Score: 10, Ticks: 950, Seed: 4},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Highest first, ties to the earlier run
	if runs[0].Score != 25 || runs[1].Seed != 1 || runs[2].Seed != 4 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].Ticks != 2100 {
		t.Errorf("Expected ticks to round-trip, got %d", runs[0].Ticks)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store, _ := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveRun(RunRecord{Score: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 5 || runs[1].Score != 4 {
		t.Errorf("Expected newest first, got %+v", runs)
	}
}

func TestStoreStats(t *testing.T) {
	store, _ := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestRun != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty history: %+v", empty)
	}

	for _, score := range []int{2, 4, 9} {
		store.SaveRun(RunRecord{Score: score})
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.BestRun != 9 || stats.TotalScore != 15 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 5 {
		t.Errorf("Expected average 5, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set once runs exist")
	}
}

func TestStoreClearRunsKeepsBest(t *testing.T) {
	store, _ := openTestStore(t)

	store.SaveRun(RunRecord{Score: 7})
	store.SaveBestScore(7)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	if best, _ := store.LoadBestScore(); best != 7 {
		t.Errorf("ClearRuns should keep the best score, got %d", best)
	}
}
