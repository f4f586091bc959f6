package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"1","name":"Press"}]`)
	if err := store.Set(ctx, "machines", payload); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, "machines")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Get = %s, want %s", got, payload)
	}
}

func TestFileStoreGetAbsent(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "users")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on absent key: err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreGetCorrupted(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	// Simulate a partially written or mangled collection file.
	if err := os.WriteFile(filepath.Join(dir, "payments.json"), []byte(`[{"id":`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = store.Get(context.Background(), "payments")
	if !errors.Is(err, ErrCorrupted) {
		t.Errorf("Get on corrupt file: err = %v, want ErrCorrupted", err)
	}
}

func TestFileStoreSetReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "routines", []byte(`["a","b"]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "routines", []byte(`["c"]`)); err != nil {
		t.Fatalf("Set (replace): %v", err)
	}

	got, err := store.Get(ctx, "routines")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `["c"]` {
		t.Errorf("Get after replace = %s, want [\"c\"]", got)
	}
}

func TestFileStoreRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "admins", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Remove(ctx, "admins"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := store.Get(ctx, "admins"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Remove: err = %v, want ErrNotFound", err)
	}

	// Removing an absent key is a no-op success.
	if err := store.Remove(ctx, "admins"); err != nil {
		t.Errorf("Remove absent key: %v", err)
	}
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		if err := store.Set(ctx, key, []byte(`[]`)); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Set(%q): err = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Set(context.Background(), "users", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "users.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("data dir contents = %v, want [users.json]", names)
	}
}
