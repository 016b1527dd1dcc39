// Package localstore persists the client's durable string entries as files
// under the state directory. The source application kept exactly two such
// entries in browser local storage: the serialized session identity and the
// raw bearer token.
package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when an entry has never been set or was deleted.
var ErrNotFound = errors.New("entry not found")

// Entry names used by the session store.
const (
	EntrySession = "session.json"
	EntryToken   = "token"
)

// Store is a file-backed key/value store for string entries.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("localstore: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get returns the value of an entry, or ErrNotFound.
func (s *Store) Get(name string) (string, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("localstore: read %s: %w", name, err)
	}
	return string(data), nil
}

// Set writes an entry atomically: write to a temp file, then rename over the
// target, so a crash mid-write never leaves a truncated entry behind.
func (s *Store) Set(name, value string) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("localstore: write %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("localstore: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: write %s: %w", name, err)
	}

	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: write %s: %w", name, err)
	}
	return nil
}

// Delete removes an entry. Deleting a missing entry is not an error.
func (s *Store) Delete(name string) error {
	if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("localstore: delete %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
