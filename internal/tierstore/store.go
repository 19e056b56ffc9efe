// Package tierstore holds the viewer's subscription tier for the running
// session, backed by a single durable key. There is exactly one writer
// context (the active viewer), so the store is a plain RWMutex value with
// last-write-wins semantics; any number of surfaces may read or subscribe.
package tierstore

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ceylonflix/ceylonflix/internal/entitlement"
	"github.com/ceylonflix/ceylonflix/pkg/telemetry"
)

// Backend persists the single tier value. Load returns the stored string
// ("" when nothing is stored yet); Save overwrites it. Implementations
// must not interpret the value — validation belongs to the store.
type Backend interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, tier string) error
}

// Store is the single source of truth for the held tier.
type Store struct {
	backend Backend
	log     *slog.Logger

	mu      sync.RWMutex
	loaded  bool
	tier    entitlement.Tier
	subs    map[int]chan entitlement.Tier
	nextSub int
}

// New creates a Store over the given backend. The persisted value is read
// lazily on first Get/Set, not here, so construction never touches storage.
func New(backend Backend, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		backend: backend,
		log:     log,
		tier:    entitlement.TierFree,
		subs:    make(map[int]chan entitlement.Tier),
	}
}

// Get returns the currently held tier. On first access it initializes from
// the backend; an absent, unreadable, or unrecognized stored value means
// free.
func (s *Store) Get(ctx context.Context) entitlement.Tier {
	s.mu.RLock()
	if s.loaded {
		t := s.tier
		s.mu.RUnlock()
		return t
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.tier = s.loadLocked(ctx)
		s.loaded = true
	}
	return s.tier
}

// Set updates the held tier. Invalid tiers are ignored: nothing is applied,
// persisted, or broadcast. The backend write happens synchronously before
// Set returns; if it fails the in-memory change still stands — access
// control keeps working for the session, only durability is lost.
func (s *Store) Set(ctx context.Context, tier entitlement.Tier) {
	if !tier.Valid() {
		s.log.Debug("rejected invalid tier", "tier", string(tier))
		return
	}

	s.mu.Lock()
	if !s.loaded {
		// Initialize so a Get after a failed first Set does not clobber
		// the new value with the persisted one.
		s.loaded = true
	}
	s.tier = tier

	if err := s.backend.Save(ctx, string(tier)); err != nil {
		s.log.Error("tier persistence failed, change is session-only", "tier", tier, "error", err)
		telemetry.CaptureError(err, map[string]string{"operation": "tier_save"})
	}

	for _, ch := range s.subs {
		select {
		case ch <- tier:
		default:
			// Slow consumer misses this value; it can always re-Get.
		}
	}
	s.mu.Unlock()
}

// Subscribe registers for tier-change notifications. Every committed Set
// is offered on the returned channel with a non-blocking send. The cancel
// func detaches the subscriber and closes the channel.
func (s *Store) Subscribe() (<-chan entitlement.Tier, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan entitlement.Tier, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (s *Store) loadLocked(ctx context.Context) entitlement.Tier {
	raw, err := s.backend.Load(ctx)
	if err != nil {
		s.log.Warn("tier load failed, defaulting to free", "error", err)
		return entitlement.TierFree
	}
	if raw == "" {
		return entitlement.TierFree
	}
	tier, err := entitlement.ParseTier(raw)
	if err != nil {
		s.log.Warn("stored tier unrecognized, defaulting to free", "stored", raw)
		return entitlement.TierFree
	}
	return tier
}
