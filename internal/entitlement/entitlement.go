// Package entitlement implements the subscription tier model: the ordered
// tier enumeration, the rule that derives the minimum tier required to watch
// a piece of content from its metadata, and the comparator that decides
// whether a held tier unlocks a required tier.
//
// Everything here is pure. RequiredTier takes the evaluation instant as a
// parameter because the new-release window moves with the clock — results
// must not be cached across calls.
package entitlement

import (
	"fmt"
	"time"
)

// Tier is a subscription level. The four values form a total order:
// free < basic < standard < premium.
//
// Content requirements are asymmetric on purpose: RequiredTier never
// produces TierFree. Free is the viewer's unset/entry state, not a tier any
// content is tagged with.
type Tier string

const (
	TierFree     Tier = "free"
	TierBasic    Tier = "basic"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

var tierRank = map[Tier]int{
	TierFree:     0,
	TierBasic:    1,
	TierStandard: 2,
	TierPremium:  3,
}

// Tiers lists all tiers in ascending rank order.
var Tiers = []Tier{TierFree, TierBasic, TierStandard, TierPremium}

// Rank returns the tier's position in the order (free=0 .. premium=3).
// Unrecognized values rank below free so they never unlock anything.
func (t Tier) Rank() int {
	r, ok := tierRank[t]
	if !ok {
		return -1
	}
	return r
}

// Valid reports whether t is one of the four recognized tiers.
func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// ParseTier converts a stored/user-supplied string into a Tier.
// Only the exact four tier strings are recognized; anything else is an
// error. Callers decide the fallback policy (default to free on read,
// reject on write).
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("entitlement: unrecognized tier %q", s)
	}
	return t, nil
}

// Snapshot is the minimal content metadata the tier derivation needs.
// Date is the release date (movies) or first air date (shows) in TMDB's
// YYYY-MM-DD form; empty or malformed means "not a new release".
type Snapshot struct {
	Rating     float64
	Popularity float64
	Date       string
}

// Rule thresholds. These mirror the product rules exactly: a recent,
// heavily-watched title is premium; anything well rated or very popular is
// standard; the rest is basic.
const (
	newReleaseWindowDays = 90
	premiumPopularity    = 400
	standardRating       = 7.5
	standardPopularity   = 500
)

const dayMillis = 86_400_000

// RequiredTier derives the minimum tier needed to watch content with the
// given metadata, evaluated at the instant now. Rules apply in strict
// order, first match wins:
//
//  1. released within the last 90 days AND popularity >= 400 -> premium
//  2. rating >= 7.5 OR popularity >= 500                     -> standard
//  3. otherwise                                              -> basic
//
// TierFree is never returned.
func RequiredTier(s Snapshot, now time.Time) Tier {
	if isNewRelease(s.Date, now) && s.Popularity >= premiumPopularity {
		return TierPremium
	}
	if s.Rating >= standardRating || s.Popularity >= standardPopularity {
		return TierStandard
	}
	return TierBasic
}

// CanAccess reports whether a viewer holding held may watch content
// requiring required. Equal tiers grant access.
func CanAccess(held, required Tier) bool {
	return held.Rank() >= required.Rank()
}

// isNewRelease reports whether date falls within the new-release window
// ending at now. The comparison is done in day-granularity milliseconds to
// match the original product rule; a missing or unparseable date is not a
// new release.
func isNewRelease(date string, now time.Time) bool {
	if date == "" {
		return false
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	elapsed := now.UnixMilli() - d.UnixMilli()
	return elapsed/dayMillis < newReleaseWindowDays
}
