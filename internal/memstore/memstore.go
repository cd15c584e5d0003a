// Package memstore persists user facts as a key/value mapping backed by a
// single JSON file.
//
// Every operation re-reads the file before acting, so two processes pointed
// at the same file stay consistent up to last-writer-wins on concurrent
// writes. A mutex serialises the read-modify-write cycle within one process;
// the persisted file is always a complete snapshot.
package memstore

import (
	"fmt"
	"sync"

	"github.com/ezhil-ai/ezhil/internal/storage"
)

// Store is a file-backed key/value memory. The zero value is not usable;
// construct with New.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// load reads the current mapping. Absent or unreadable storage degrades to an
// empty mapping ("no memories yet").
func (s *Store) load() map[string]string {
	m := map[string]string{}
	// Corrupt files are treated the same as missing ones for reads.
	_ = storage.Load(s.path, &m)
	if m == nil {
		m = map[string]string{}
	}
	return m
}

// Remember stores value under key, overwriting any previous value, and
// persists the full mapping. The returned confirmation echoes what was
// stored. A persistence failure is returned as an error; the mapping on disk
// is unchanged in that case.
func (s *Store) Remember(key, value string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.load()
	m[key] = value
	if err := storage.Save(s.path, m); err != nil {
		return "", fmt.Errorf("persist memory: %w", err)
	}
	return fmt.Sprintf("OK, I've stored the following: '%s: %s'", key, value), nil
}

// RecallAll returns the current mapping. Missing or unreadable storage is an
// empty mapping, never an error.
func (s *Store) RecallAll() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}
