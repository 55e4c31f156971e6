package storage

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreKeyValue(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Errorf("Get(missing) = (ok=%v, err=%v), expected absent", ok, err)
	}

	if err := store.Put(ctx, "k", "v1"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put(ctx, "k", "v2"); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}

	value, ok, err := store.Get(ctx, "k")
	if err != nil || !ok || value != "v2" {
		t.Errorf("Get(k) = (%q, %v, %v), expected (\"v2\", true, nil)", value, ok, err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("key should be gone after Delete")
	}
}

func TestStoreHighScoresRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	empty, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() on fresh database failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("fresh database should have no scores, got %v", empty)
	}

	want := map[string]int{"Alice": 5, "Bob": 3}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	// Reopen to make sure the mapping is persisted
	store, err = Open(dbPath, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v, expected %v", got, want)
	}

	raw, _, _ := store.Get(ctx, HighScoresKey)
	if raw != `{"Alice":5,"Bob":3}` {
		t.Errorf("stored JSON = %s, expected {\"Alice\":5,\"Bob\":3}", raw)
	}
}

func TestStoreMalformedHighScores(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for _, raw := range []string{"not json", `["a", "b"]`, `{"Alice": "five"}`} {
		if err := store.Put(ctx, HighScoresKey, raw); err != nil {
			t.Fatalf("Put() failed: %v", err)
		}

		scores, err := store.Load(ctx)
		if err != nil {
			t.Errorf("Load(%q) returned error %v, expected empty table", raw, err)
		}
		if len(scores) != 0 {
			t.Errorf("Load(%q) = %v, expected empty table", raw, scores)
		}
	}
}

func TestStoreClearHighScores(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	store.Save(ctx, map[string]int{"Alice": 5})
	if err := store.ClearHighScores(ctx); err != nil {
		t.Fatalf("ClearHighScores() failed: %v", err)
	}

	scores, _ := store.Load(ctx)
	if len(scores) != 0 {
		t.Errorf("scores after clear = %v, expected empty", scores)
	}
}

func TestStoreSessionHistory(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() on empty history failed: %v", err)
	}
	if stats.Sessions != 0 || stats.Best != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", stats)
	}

	store.RecordSession(ctx, "Alice", 5)
	store.RecordSession(ctx, "", 2)
	store.RecordSession(ctx, "Bob", 8)

	records, err := store.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 sessions with limit, got %d", len(records))
	}
	if records[0].Name != "Bob" || records[0].Score != 8 {
		t.Errorf("newest session = %+v, expected Bob/8", records[0])
	}
	if records[1].Name != "" || records[1].Score != 2 {
		t.Errorf("second session = %+v, expected anonymous/2", records[1])
	}

	stats, err = store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 3 || stats.Best != 8 || stats.TotalScore != 15 {
		t.Errorf("Stats() = %+v, expected 3 sessions, best 8, total 15", stats)
	}
	if stats.AvgScore != 5 {
		t.Errorf("AvgScore = %v, expected 5", stats.AvgScore)
	}

	if err := store.ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}
	records, _ = store.RecentSessions(ctx, 10)
	if len(records) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(records))
	}
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(map[string]int{"Alice": 5})

	scores, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	scores["Alice"] = 100
	if repo.Scores()["Alice"] != 5 {
		t.Error("Load() should return a copy")
	}

	if err := repo.Save(ctx, map[string]int{"Bob": 2}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if !reflect.DeepEqual(repo.Scores(), map[string]int{"Bob": 2}) {
		t.Errorf("Scores() = %v, expected only Bob", repo.Scores())
	}
	if repo.Saves() != 1 {
		t.Errorf("Saves() = %d, expected 1", repo.Saves())
	}

	repo.RecordSession(ctx, "Bob", 2)
	if got := repo.Sessions(); len(got) != 1 || got[0].Name != "Bob" {
		t.Errorf("Sessions() = %v, expected one Bob session", got)
	}
}
