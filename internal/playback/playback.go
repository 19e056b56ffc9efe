// Package playback constructs the reference handed to the external embed
// player. The player (Vidking) turns the reference into a renderable page;
// this service never fetches, inspects, or validates that address — it only
// builds it, and only after the entitlement gate has allowed access.
package playback

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/ceylonflix/ceylonflix/internal/catalog"
)

const embedBase = "https://www.vidking.net/embed"

// playerTheme is the accent color the embed player is themed with.
const playerTheme = "d4a520"

// Reference identifies what the player should play: the provider id, the
// media kind, and for episodic content the season/episode indices.
type Reference struct {
	ProviderID int          `json:"provider_id"`
	Kind       catalog.Kind `json:"kind"`
	Season     int          `json:"season,omitempty"`
	Episode    int          `json:"episode,omitempty"`
}

// NewReference builds a Reference. For episodic content, season and
// episode values below 1 default to 1 (first episode of the first season).
// Movies carry no season/episode.
func NewReference(kind catalog.Kind, providerID, season, episode int) Reference {
	r := Reference{ProviderID: providerID, Kind: kind}
	if kind == catalog.KindTV {
		if season < 1 {
			season = 1
		}
		if episode < 1 {
			episode = 1
		}
		r.Season = season
		r.Episode = episode
	}
	return r
}

// EmbedURL returns the external player address for the reference.
func (r Reference) EmbedURL() string {
	if r.Kind == catalog.KindTV {
		return fmt.Sprintf("%s/tv/%d/%d/%d?color=%s&autoPlay=false&nextEpisode=true&episodeSelector=true",
			embedBase, r.ProviderID, r.Season, r.Episode, playerTheme)
	}
	return fmt.Sprintf("%s/movie/%d?color=%s&autoPlay=false", embedBase, r.ProviderID, playerTheme)
}

// Signer issues expiring HMAC-SHA256 signatures over playback references,
// so a downstream player proxy can verify a reference was produced by a
// gate decision and has not been tampered with or replayed indefinitely.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a Signer. ttl bounds how long a signed reference stays
// valid.
func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl}
}

// Sign returns the hex signature and expiry for the reference, anchored at
// now.
func (s *Signer) Sign(r Reference, now time.Time) (sig string, expiresAt time.Time) {
	expiresAt = now.Add(s.ttl).UTC()
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(s.message(r, expiresAt)))
	return hex.EncodeToString(mac.Sum(nil)), expiresAt
}

// Verify reports whether sig is a valid, unexpired signature for r.
func (s *Signer) Verify(r Reference, sig string, expiresAt, now time.Time) bool {
	if now.After(expiresAt) {
		return false
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(s.message(r, expiresAt)))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(sig))
}

func (s *Signer) message(r Reference, expiresAt time.Time) string {
	return string(r.Kind) + ":" + strconv.Itoa(r.ProviderID) + ":" +
		strconv.Itoa(r.Season) + ":" + strconv.Itoa(r.Episode) + ":" +
		strconv.FormatInt(expiresAt.Unix(), 10)
}
