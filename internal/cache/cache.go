// Package cache provides the short-lived result cache used to bound
// recomputation under repeated identical requests.
package cache

import (
	"strings"
	"sync"
	"time"
)

// Cache is the capability injected into the engine. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get returns the cached value for key, if present and unexpired.
	Get(key string) (any, bool)

	// Set stores value under key for ttl.
	Set(key string, value any, ttl time.Duration)

	// InvalidateUser drops every entry belonging to the user. Called by
	// the collaborator that records new events or progress mutations.
	InvalidateUser(userID string)

	// Purge drops everything.
	Purge()
}

// Key builds a cache key from its parts. The first part must be the
// user ID so InvalidateUser can match by prefix.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Memory is an in-process TTL cache. Expired entries are dropped lazily
// on read and swept on write.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewMemoryAt creates a cache with an injected clock, for tests.
func NewMemoryAt(now func() time.Time) *Memory {
	m := NewMemory()
	m.now = now
	return m
}

func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, k)
		}
	}
	m.entries[key] = entry{value: value, expiresAt: now.Add(ttl)}
}

func (m *Memory) InvalidateUser(userID string) {
	prefix := userID + "|"
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
}

func (m *Memory) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]entry)
}
