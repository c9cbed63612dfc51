// Package memory implements an in-memory Substrate for tests and ephemeral
// runs.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"fabcore/pkg/domain"
)

var _ domain.Substrate = (*Store)(nil)

// Store implements domain.Substrate backed by process memory.
type Store struct {
	mu   sync.RWMutex
	objs map[string][]byte
}

// New returns an empty in-memory substrate.
func New() *Store { return &Store{objs: make(map[string][]byte)} }

// Read returns the payload stored under key.
func (s *Store) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.objs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, true, nil
}

// Write stores payload under key, overwriting any prior value.
func (s *Store) Write(_ context.Context, key string, payload []byte) error {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objs[key] = cp
	return nil
}

// Delete removes key, reporting whether it existed.
func (s *Store) Delete(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objs[key]
	if ok {
		delete(s.objs, key)
	}
	return ok, nil
}

// ListKeys returns all keys beginning with prefix, sorted.
func (s *Store) ListKeys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.objs))
	for k := range s.objs {
		if prefix == "" || strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out, nil
}
