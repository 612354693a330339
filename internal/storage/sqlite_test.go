package storage

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.Name())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		player   string
		score    int
		perfects int
	}{
		{"ann", 7, 1},
		{"bob", 12, 0},
		{"cid", 7, 3},
	} {
		if _, err := store.SaveScore(s.player, s.score, s.perfects); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Score first, perfect landings break ties
	want := []string{"bob", "cid", "ann"}
	for i, name := range want {
		if scores[i].Player != name {
			t.Errorf("scores[%d].Player = %q, want %q", i, scores[i].Player, name)
		}
	}
	if scores[1].Perfects != 3 {
		t.Errorf("Expected cid to have 3 perfects, got %d", scores[1].Perfects)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("p", (i+1)*10, 0)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty leaderboard, got %d", high)
	}

	store.SaveScore("a", 4, 0)
	store.SaveScore("b", 9, 2)
	store.SaveScore("c", 6, 0)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("Expected high score of 9, got %d", high)
	}
}

func TestStoreAnonymousPlayer(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("", 3, 0)
	scores, _ := store.TopScores(1)
	if len(scores) != 1 || scores[0].Player != "anonymous" {
		t.Errorf("Expected anonymous entry, got %v", scores)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("a", 2, 1)
	store.SaveScore("b", 6, 2)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.HighScore != 6 || stats.Perfects != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 4 {
		t.Errorf("Expected average 4, got %v", stats.AvgScore)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("a", 1, 0)
	store.SaveScore("b", 2, 0)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreSharedByName(t *testing.T) {
	first := openTestStore(t)
	second, err := Open(t.Name())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer second.Close()

	first.SaveScore("shared", 11, 0)

	high, err := second.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 11 {
		t.Errorf("Expected stores with the same name to share data, got %d", high)
	}

	other, err := Open(t.Name() + "-other")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer other.Close()

	high, _ = other.HighScore()
	if high != 0 {
		t.Errorf("Expected separate leaderboard to be empty, got %d", high)
	}
}
