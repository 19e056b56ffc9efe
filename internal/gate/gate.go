// Package gate makes the access decision for one content item: derive the
// required tier from the item's metadata, compare it against the held
// tier, and either produce a playback reference or the data the upsell
// gate renders. The decision is stateless and re-evaluated on every
// request with the latest held tier.
package gate

import (
	"time"

	"github.com/ceylonflix/ceylonflix/internal/catalog"
	"github.com/ceylonflix/ceylonflix/internal/entitlement"
	"github.com/ceylonflix/ceylonflix/internal/playback"
)

// Decision is the outcome of one gate evaluation. Playback is non-nil only
// when access is allowed — a denied decision never constructs or leaks a
// playback reference.
type Decision struct {
	Allowed  bool
	Required entitlement.Tier
	Held     entitlement.Tier
	Playback *playback.Reference
}

// Decide evaluates access for item with the given held tier at instant
// now. season/episode apply to episodic content only and default to 1/1
// when below 1.
func Decide(item catalog.Item, held entitlement.Tier, season, episode int, now time.Time) Decision {
	required := entitlement.RequiredTier(item.Snapshot(), now)

	d := Decision{
		Required: required,
		Held:     held,
	}
	if !entitlement.CanAccess(held, required) {
		return d
	}

	ref := playback.NewReference(item.Kind, item.ID, season, episode)
	d.Allowed = true
	d.Playback = &ref
	return d
}
