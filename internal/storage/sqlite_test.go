package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []float64{81.4, 42, 93.2} {
		if _, err := store.SaveScore("mines_beginner", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("mines_expert", 400.6); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("mines_beginner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []float64{93.2, 81.4, 42}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %v, want %v", i, scores[i].Score, w)
		}
		if scores[i].Variant != "mines_beginner" {
			t.Errorf("scores[%d].Variant = %q", i, scores[i].Variant)
		}
	}

	expert, err := store.TopScores("mines_expert", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(expert) != 1 {
		t.Errorf("Expected 1 expert score, got %d", len(expert))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("mines", float64(i+1)*10)
	}

	scores, err := store.TopScores("mines", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("mines")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %v", high)
	}

	store.SaveScore("mines", 61.5)
	store.SaveScore("mines", 88.1)
	store.SaveScore("mines", 70)

	high, err = store.HighScore("mines")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 88.1 {
		t.Errorf("Expected high score of 88.1, got %v", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("mines", 50)
	store.SaveScore("mines", 60)
	store.SaveScore("mines_expert", 300)
	store.SaveResult(Result{Variant: "mines", Won: true, Score: 60})

	if err := store.ClearScores("mines"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("mines", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	stats, _ := store.Stats("mines")
	if stats.Played != 0 {
		t.Errorf("Expected results to be cleared, got %d played", stats.Played)
	}

	expert, _ := store.TopScores("mines_expert", 10)
	if len(expert) != 1 {
		t.Error("Expert scores should not be affected by clearing mines")
	}
}

func TestStoreResults(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Variant: "mines", Won: false, Score: 0, Elapsed: 4 * time.Second, FlagUses: 2},
		{Variant: "mines", Won: true, Score: 80, Elapsed: 50 * time.Second, Undos: 1, SessionID: "abc"},
		{Variant: "mines", Won: true, Score: 90, Elapsed: 30 * time.Second},
		{Variant: "mines_expert", Won: true, Score: 300, Elapsed: 10 * time.Second},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	stats, err := store.Stats("mines")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 3 || stats.Won != 2 {
		t.Errorf("played/won = %d/%d, want 3/2", stats.Played, stats.Won)
	}
	if stats.BestScore != 90 {
		t.Errorf("BestScore = %v, want 90", stats.BestScore)
	}
	if stats.AvgScore != 85 {
		t.Errorf("AvgScore = %v, want 85", stats.AvgScore)
	}
	if stats.FastestWin != 30*time.Second {
		t.Errorf("FastestWin = %v, want 30s", stats.FastestWin)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent results, got %d", len(recent))
	}
	if recent[0].Variant != "mines_expert" || recent[1].Score != 90 {
		t.Errorf("unexpected recent results: %+v", recent)
	}
	if !recent[1].Won || recent[1].Elapsed != 30*time.Second {
		t.Errorf("result not round-tripped: %+v", recent[1])
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("mines")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 0 || stats.WinRate() != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty variant: %+v", stats)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
