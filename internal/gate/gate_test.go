package gate

import (
	"testing"
	"time"

	"github.com/ceylonflix/ceylonflix/internal/catalog"
	"github.com/ceylonflix/ceylonflix/internal/entitlement"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func movieItem(rating, popularity float64, daysOld int) catalog.Item {
	return catalog.Item{
		Kind:       catalog.KindMovie,
		ID:         693134,
		Rating:     rating,
		Popularity: popularity,
		Date:       now.AddDate(0, 0, -daysOld).Format("2006-01-02"),
	}
}

func TestDecide_AllowedBuildsPlayback(t *testing.T) {
	item := movieItem(6.0, 100, 500) // basic content
	d := Decide(item, entitlement.TierBasic, 0, 0, now)

	if !d.Allowed {
		t.Fatal("basic viewer should access basic content")
	}
	if d.Required != entitlement.TierBasic || d.Held != entitlement.TierBasic {
		t.Errorf("decision tiers = %s/%s", d.Required, d.Held)
	}
	if d.Playback == nil {
		t.Fatal("allowed decision must carry a playback reference")
	}
	if d.Playback.ProviderID != item.ID || d.Playback.Kind != catalog.KindMovie {
		t.Errorf("playback = %+v", d.Playback)
	}
}

func TestDecide_DeniedCarriesNoPlayback(t *testing.T) {
	item := movieItem(8.0, 450, 10) // new + popular -> premium
	d := Decide(item, entitlement.TierStandard, 0, 0, now)

	if d.Allowed {
		t.Fatal("standard viewer should be gated from premium content")
	}
	if d.Required != entitlement.TierPremium {
		t.Errorf("required = %s, want premium", d.Required)
	}
	if d.Held != entitlement.TierStandard {
		t.Errorf("held = %s, want standard", d.Held)
	}
	if d.Playback != nil {
		t.Error("denied decision must not construct a playback reference")
	}
}

func TestDecide_EpisodicDefaults(t *testing.T) {
	show := catalog.Item{Kind: catalog.KindTV, ID: 94997, Rating: 5.0, Popularity: 10}
	d := Decide(show, entitlement.TierPremium, 0, 0, now)

	if !d.Allowed || d.Playback == nil {
		t.Fatal("premium viewer should access basic content")
	}
	if d.Playback.Season != 1 || d.Playback.Episode != 1 {
		t.Errorf("season/episode = %d/%d, want 1/1", d.Playback.Season, d.Playback.Episode)
	}
}

func TestDecide_ReEvaluatesWithClock(t *testing.T) {
	// Same item, same viewer: premium while new, standard once the
	// release window has passed.
	item := movieItem(8.0, 450, 10)

	for _, tc := range []struct {
		at   time.Time
		want entitlement.Tier
	}{
		{now, entitlement.TierPremium},
		{now.AddDate(0, 0, 180), entitlement.TierStandard},
	} {
		d := Decide(item, entitlement.TierFree, 0, 0, tc.at)
		if d.Required != tc.want {
			t.Errorf("at %v required = %s, want %s", tc.at, d.Required, tc.want)
		}
	}
}
