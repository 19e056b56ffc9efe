package tierstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ceylonflix/ceylonflix/internal/entitlement"
)

// failingBackend persists nothing and fails every Save.
type failingBackend struct {
	loadValue string
	loadErr   error
	saveCalls int
}

func (b *failingBackend) Load(ctx context.Context) (string, error) {
	return b.loadValue, b.loadErr
}

func (b *failingBackend) Save(ctx context.Context, tier string) error {
	b.saveCalls++
	return errors.New("storage unavailable")
}

func TestGet_DefaultsToFree(t *testing.T) {
	s := New(NewMemoryBackend(), nil)
	if got := s.Get(context.Background()); got != entitlement.TierFree {
		t.Errorf("Get on empty backend = %s, want free", got)
	}
}

func TestGet_UnrecognizedStoredValueDefaultsToFree(t *testing.T) {
	b := NewMemoryBackend()
	b.value = "platinum"
	s := New(b, nil)
	if got := s.Get(context.Background()); got != entitlement.TierFree {
		t.Errorf("Get with garbage stored value = %s, want free", got)
	}
}

func TestSet_RoundTripSameSession(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), nil)

	s.Set(ctx, entitlement.TierStandard)
	if got := s.Get(ctx); got != entitlement.TierStandard {
		t.Errorf("Get after Set = %s, want standard", got)
	}
}

func TestSet_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	s := New(b, nil)
	s.Set(ctx, entitlement.TierStandard)

	// A fresh store over the same backend simulates a process restart.
	reloaded := New(b, nil)
	if got := reloaded.Get(ctx); got != entitlement.TierStandard {
		t.Errorf("Get after reload = %s, want standard", got)
	}
}

func TestSet_InvalidTierIsIgnored(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	s := New(b, nil)

	s.Set(ctx, entitlement.TierPremium)
	s.Set(ctx, entitlement.Tier("gold"))

	if got := s.Get(ctx); got != entitlement.TierPremium {
		t.Errorf("held tier after invalid Set = %s, want premium", got)
	}
	if b.value != "premium" {
		t.Errorf("persisted value after invalid Set = %q, want premium", b.value)
	}
}

func TestSet_BackendFailureStillAppliesInMemory(t *testing.T) {
	ctx := context.Background()
	b := &failingBackend{}
	s := New(b, nil)

	s.Set(ctx, entitlement.TierBasic)

	if got := s.Get(ctx); got != entitlement.TierBasic {
		t.Errorf("Get after failed persist = %s, want basic", got)
	}
	if b.saveCalls != 1 {
		t.Errorf("Save called %d times, want 1", b.saveCalls)
	}
}

func TestGet_LoadFailureDefaultsToFree(t *testing.T) {
	s := New(&failingBackend{loadErr: errors.New("storage unavailable")}, nil)
	if got := s.Get(context.Background()); got != entitlement.TierFree {
		t.Errorf("Get with failing load = %s, want free", got)
	}
}

func TestSubscribe_NotifiesOnChange(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), nil)

	ch, cancel := s.Subscribe()
	defer cancel()

	s.Set(ctx, entitlement.TierStandard)

	select {
	case got := <-ch:
		if got != entitlement.TierStandard {
			t.Errorf("notified tier = %s, want standard", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no notification within 1s")
	}
}

func TestSubscribe_CancelClosesChannel(t *testing.T) {
	s := New(NewMemoryBackend(), nil)
	ch, cancel := s.Subscribe()
	cancel()

	if _, open := <-ch; open {
		t.Error("channel should be closed after cancel")
	}

	// A Set after cancel must not panic on the closed channel.
	s.Set(context.Background(), entitlement.TierBasic)
}

func TestSubscribe_InvalidSetDoesNotNotify(t *testing.T) {
	s := New(NewMemoryBackend(), nil)
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Set(context.Background(), entitlement.Tier("gold"))

	select {
	case got := <-ch:
		t.Errorf("unexpected notification %s for invalid Set", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFileBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "tier")
	b := NewFileBackend(path)

	if got, err := b.Load(ctx); err != nil || got != "" {
		t.Fatalf("Load before first Save = %q, %v; want empty, nil", got, err)
	}

	if err := b.Save(ctx, "standard"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "standard" {
		t.Errorf("Load = %q, want standard", got)
	}
}

func TestFileBackend_StoreIntegration(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tier")

	s := New(NewFileBackend(path), nil)
	s.Set(ctx, entitlement.TierPremium)

	reloaded := New(NewFileBackend(path), nil)
	if got := reloaded.Get(ctx); got != entitlement.TierPremium {
		t.Errorf("Get from fresh store over same file = %s, want premium", got)
	}
}
