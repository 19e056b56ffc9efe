package entitlement

import (
	"testing"
	"time"
)

// fixed evaluation instant so the new-release window is deterministic.
var evalNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return evalNow.AddDate(0, 0, -n).Format("2006-01-02")
}

func TestCanAccess_EqualTierGrants(t *testing.T) {
	for _, tier := range Tiers {
		if !CanAccess(tier, tier) {
			t.Errorf("CanAccess(%s, %s) = false, want true", tier, tier)
		}
	}
}

func TestCanAccess_OrderIsMonotonic(t *testing.T) {
	for i, lower := range Tiers {
		for _, higher := range Tiers[i+1:] {
			if CanAccess(lower, higher) {
				t.Errorf("CanAccess(%s, %s) = true, want false", lower, higher)
			}
			if !CanAccess(higher, lower) {
				t.Errorf("CanAccess(%s, %s) = false, want true", higher, lower)
			}
		}
	}
}

func TestCanAccess_UnrecognizedHeldTierUnlocksNothing(t *testing.T) {
	if CanAccess(Tier("platinum"), TierBasic) {
		t.Error("unrecognized held tier should not unlock basic content")
	}
}

func TestRequiredTier(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want Tier
	}{
		{
			name: "new release with high popularity is premium",
			snap: Snapshot{Rating: 8.0, Popularity: 450, Date: daysAgo(10)},
			want: TierPremium,
		},
		{
			name: "old release falls through to rating rule",
			snap: Snapshot{Rating: 8.0, Popularity: 450, Date: daysAgo(200)},
			want: TierStandard,
		},
		{
			name: "no date and unremarkable metadata is basic",
			snap: Snapshot{Rating: 6.0, Popularity: 300},
			want: TierBasic,
		},
		{
			name: "popularity alone reaches standard",
			snap: Snapshot{Rating: 6.0, Popularity: 500, Date: daysAgo(200)},
			want: TierStandard,
		},
		{
			name: "new but quiet release is not premium",
			snap: Snapshot{Rating: 6.0, Popularity: 399, Date: daysAgo(5)},
			want: TierBasic,
		},
		{
			name: "rating threshold is inclusive",
			snap: Snapshot{Rating: 7.5, Popularity: 0},
			want: TierStandard,
		},
		{
			name: "window edge: 89 days is still new",
			snap: Snapshot{Rating: 0, Popularity: 400, Date: daysAgo(89)},
			want: TierPremium,
		},
		{
			name: "window edge: 90 days is no longer new",
			snap: Snapshot{Rating: 0, Popularity: 400, Date: daysAgo(90)},
			want: TierBasic,
		},
		{
			name: "malformed date is treated as absent",
			snap: Snapshot{Rating: 6.0, Popularity: 450, Date: "not-a-date"},
			want: TierBasic,
		},
		{
			name: "premium rule wins over standard when both match",
			snap: Snapshot{Rating: 9.0, Popularity: 900, Date: daysAgo(1)},
			want: TierPremium,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RequiredTier(tc.snap, evalNow)
			if got != tc.want {
				t.Errorf("RequiredTier(%+v) = %s, want %s", tc.snap, got, tc.want)
			}
		})
	}
}

func TestRequiredTier_NeverFree(t *testing.T) {
	snaps := []Snapshot{
		{},
		{Rating: -1, Popularity: -1},
		{Rating: 10, Popularity: 10000, Date: daysAgo(0)},
		{Date: daysAgo(1000)},
		{Date: "garbage"},
	}
	for _, s := range snaps {
		if got := RequiredTier(s, evalNow); got == TierFree {
			t.Errorf("RequiredTier(%+v) returned free", s)
		}
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers {
		got, err := ParseTier(string(tier))
		if err != nil || got != tier {
			t.Errorf("ParseTier(%q) = %v, %v", tier, got, err)
		}
	}

	for _, bad := range []string{"", "Premium", "gold", "FREE", " basic"} {
		if _, err := ParseTier(bad); err == nil {
			t.Errorf("ParseTier(%q) succeeded, want error", bad)
		}
	}
}

func TestRank(t *testing.T) {
	for i, tier := range Tiers {
		if tier.Rank() != i {
			t.Errorf("%s.Rank() = %d, want %d", tier, tier.Rank(), i)
		}
	}
	if Tier("gold").Rank() != -1 {
		t.Error("unrecognized tier should rank below free")
	}
}
