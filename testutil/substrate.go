package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// FakeSubstrate is an in-memory key-value substrate for tests, with hooks for
// injecting failures on the write path.
type FakeSubstrate struct {
	mu   sync.RWMutex
	data map[string][]byte

	// WriteErr, when set, is returned by every Write call.
	WriteErr error
	// FailWritesTo, when non-empty, fails only writes to that exact key.
	FailWritesTo string
	// WriteErrFor is the error returned for FailWritesTo matches.
	WriteErrFor error

	writes int
}

// NewFakeSubstrate returns an empty fake substrate.
func NewFakeSubstrate() *FakeSubstrate {
	return &FakeSubstrate{data: make(map[string][]byte)}
}

// Read implements domain.Substrate.
func (f *FakeSubstrate) Read(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	payload, ok := f.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

// Write implements domain.Substrate.
func (f *FakeSubstrate) Write(_ context.Context, key string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.WriteErr != nil {
		return f.WriteErr
	}
	if f.FailWritesTo != "" && key == f.FailWritesTo {
		return f.WriteErrFor
	}
	stored := make([]byte, len(payload))
	copy(stored, payload)
	f.data[key] = stored
	f.writes++
	return nil
}

// Delete implements domain.Substrate.
func (f *FakeSubstrate) Delete(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return false, nil
	}
	delete(f.data, key)
	return true, nil
}

// ListKeys implements domain.Substrate.
func (f *FakeSubstrate) ListKeys(_ context.Context, prefix string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var keys []string
	for k := range f.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Put stores a raw payload directly, bypassing the failure hooks. Tests use
// it to plant corrupt blobs.
func (f *FakeSubstrate) Put(key string, payload []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = payload
}

// Writes reports how many writes succeeded.
func (f *FakeSubstrate) Writes() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.writes
}
