// Package store persists small JSON documents such as high scores and
// settings under the user's state directory. It replaces per-game ad
// hoc save files with one versioned key/value document per game.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	// docVersion is bumped when the schema changes, so Open can apply
	// migrations in the future.
	docVersion = 1

	appDirName = "arcadekit"
)

// document is the on-disk shape.
type document struct {
	Version int                        `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
}

// Store is a file-backed key/value document. Values are arbitrary
// JSON-marshalable Go values. Mutations are in-memory until Save is
// called; Save writes atomically.
//
// A Store is not safe for concurrent use; the games touch it only from
// their update loops.
type Store struct {
	path string
	doc  document
}

// Open loads the store named name from dir, creating an empty in-memory
// store if the file does not exist yet. Pass an empty dir to use the
// default state path (~/.local/state/arcadekit, respecting
// XDG_STATE_HOME).
func Open(dir, name string) (*Store, error) {
	if dir == "" {
		dir = defaultDir()
	}
	s := &Store{path: filepath.Join(dir, name+".json")}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.doc = document{Version: docVersion, Entries: make(map[string]json.RawMessage)}
			return s, nil
		}
		return nil, fmt.Errorf("reading store: %w", err)
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("parsing store: %w", err)
	}
	if s.doc.Entries == nil {
		s.doc.Entries = make(map[string]json.RawMessage)
	}
	return s, nil
}

// Path returns the full path of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Get unmarshals the value stored under key into v. The second return is
// false when the key is absent, leaving v untouched.
func (s *Store) Get(key string, v any) (bool, error) {
	raw, ok := s.doc.Entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decoding %q: %w", key, err)
	}
	return true, nil
}

// Set stores v under key. The change is in-memory until Save.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	s.doc.Entries[key] = raw
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) {
	delete(s.doc.Entries, key)
}

// Keys returns all stored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.doc.Entries))
	for k := range s.doc.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.doc.Entries)
}

// Save writes the document to disk using an atomic
// temp-file-then-rename pattern. The directory is created if it does not
// already exist.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}

	s.doc.Version = docVersion
	data, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("renaming store file: %w", err)
	}
	committed = true

	return nil
}

// defaultDir returns ~/.local/state/arcadekit, respecting XDG_STATE_HOME
// if set.
func defaultDir() string {
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".local", "state", appDirName)
}
