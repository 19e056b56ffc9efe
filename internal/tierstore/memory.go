package tierstore

import (
	"context"
	"sync"
)

// MemoryBackend keeps the tier in process memory only. Used by tests and
// by explicit ephemeral mode (TIER_BACKEND=memory), where durability is
// deliberately not wanted.
type MemoryBackend struct {
	mu    sync.Mutex
	value string
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value, nil
}

func (b *MemoryBackend) Save(ctx context.Context, tier string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = tier
	return nil
}
