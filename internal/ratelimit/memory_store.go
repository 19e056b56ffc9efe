package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local Store for single-instance deployments
// and tests. Expired counters are dropped lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	count   int64
	expires time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry), now: time.Now}
}

func (s *MemoryStore) Incr(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || (!e.expires.IsZero() && !s.now().Before(e.expires)) {
		e = &memoryEntry{}
		s.entries[key] = e
	}
	e.count++
	return e.count, nil
}

func (s *MemoryStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		e.expires = s.now().Add(ttl)
	}
	return nil
}

func (s *MemoryStore) TTL(_ context.Context, key string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || e.expires.IsZero() {
		return 0, nil
	}
	return e.expires.Sub(s.now()), nil
}
