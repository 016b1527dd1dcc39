package localstore

import (
	"errors"
	"testing"
)

func TestSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set(EntryToken, "abc123"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(EntryToken)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("expected abc123, got %q", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set(EntrySession, `{"user":"ana"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(EntrySession, `{"user":"luis"}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := store.Get(EntrySession)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"user":"luis"}` {
		t.Fatalf("expected overwritten value, got %q", got)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("never-set")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set(EntryToken, "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Delete(EntryToken); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(EntryToken); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	_, err := store.Get(EntryToken)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}
