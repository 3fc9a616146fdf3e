package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/esanchezmex/statsbomb-viz/internal/cache"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := cache.NewFileStore(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	payload := []byte(`[{"competition_id": 1}]`)
	if err := store.Set(ctx, "competitions", payload); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := store.Get(ctx, "competitions")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != string(payload) {
		t.Errorf("got %s, want %s", got, payload)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := cache.NewFileStore(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := store.Get(context.Background(), "nope"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestFileStoreExpiry(t *testing.T) {
	dir := t.TempDir()
	store, err := cache.NewFileStore(dir, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "events_1", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Age the entry past the TTL.
	stale := time.Now().Add(-2 * time.Minute)
	if err := os.Chtimes(filepath.Join(dir, "events_1.json"), stale, stale); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	if _, ok := store.Get(ctx, "events_1"); ok {
		t.Error("expected miss for expired entry")
	}
}

func TestFileStoreCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	store, err := cache.NewFileStore(dir, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "matches_1_2.json"), []byte(`{"truncat`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := store.Get(context.Background(), "matches_1_2"); ok {
		t.Error("expected miss for corrupt entry")
	}
}

func TestFileStoreKeySanitized(t *testing.T) {
	dir := t.TempDir()
	store, err := cache.NewFileStore(dir, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "../escape", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".._escape.json")); err != nil {
		t.Errorf("sanitized entry not found in cache dir: %v", err)
	}
	if _, ok := store.Get(ctx, "../escape"); !ok {
		t.Error("expected hit through sanitized key")
	}
}
