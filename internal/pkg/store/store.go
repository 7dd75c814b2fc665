// internal/pkg/store/store.go
package store

import (
	"sync"
)

// Store is the persistent key/value namespace shared by every storefront
// surface. Reads that fail for any reason report the value as absent;
// writes are best-effort and never return an error, because persistence is
// not correctness-critical to rendering.
type Store interface {
	// Read returns the raw value for key, or ok=false if the key is absent
	// or unreadable.
	Read(key string) (value string, ok bool)

	// Write stores value under key. Failures are swallowed.
	Write(key, value string)
}

// Memory is an in-process Store used by tests and single-node development
// setups. It satisfies the same contract as the Redis-backed store so ledger
// code never knows which one it is talking to.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
	}
}

// Read returns the value for key if present
func (m *Memory) Read(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok
}

// Write stores value under key
func (m *Memory) Write(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
}
