package playback

import (
	"testing"
	"time"

	"github.com/ceylonflix/ceylonflix/internal/catalog"
)

func TestEmbedURL_Movie(t *testing.T) {
	r := NewReference(catalog.KindMovie, 693134, 0, 0)
	want := "https://www.vidking.net/embed/movie/693134?color=d4a520&autoPlay=false"
	if got := r.EmbedURL(); got != want {
		t.Errorf("EmbedURL = %q, want %q", got, want)
	}
	if r.Season != 0 || r.Episode != 0 {
		t.Errorf("movie reference should carry no season/episode, got %+v", r)
	}
}

func TestEmbedURL_TV(t *testing.T) {
	r := NewReference(catalog.KindTV, 94997, 2, 3)
	want := "https://www.vidking.net/embed/tv/94997/2/3?color=d4a520&autoPlay=false&nextEpisode=true&episodeSelector=true"
	if got := r.EmbedURL(); got != want {
		t.Errorf("EmbedURL = %q, want %q", got, want)
	}
}

func TestNewReference_TVDefaultsToFirstEpisode(t *testing.T) {
	tests := []struct{ season, episode int }{
		{0, 0},
		{-1, 5},
		{5, -1},
	}
	for _, tc := range tests {
		r := NewReference(catalog.KindTV, 1, tc.season, tc.episode)
		if r.Season < 1 || r.Episode < 1 {
			t.Errorf("NewReference(tv, 1, %d, %d) = %+v, want season/episode >= 1",
				tc.season, tc.episode, r)
		}
	}

	r := NewReference(catalog.KindTV, 1, 0, 0)
	if r.Season != 1 || r.Episode != 1 {
		t.Errorf("unspecified season/episode should default to 1/1, got %d/%d", r.Season, r.Episode)
	}
}

func TestSigner_RoundTrip(t *testing.T) {
	s := NewSigner("secret", 15*time.Minute)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	r := NewReference(catalog.KindTV, 94997, 1, 1)

	sig, exp := s.Sign(r, now)
	if sig == "" {
		t.Fatal("empty signature")
	}
	if !exp.Equal(now.Add(15 * time.Minute)) {
		t.Errorf("expiry = %v, want now+15m", exp)
	}
	if !s.Verify(r, sig, exp, now) {
		t.Error("signature should verify before expiry")
	}
	if s.Verify(r, sig, exp, exp.Add(time.Second)) {
		t.Error("signature should fail after expiry")
	}

	tampered := r
	tampered.Episode = 2
	if s.Verify(tampered, sig, exp, now) {
		t.Error("signature should not verify for a different reference")
	}

	other := NewSigner("other-secret", 15*time.Minute)
	if other.Verify(r, sig, exp, now) {
		t.Error("signature should not verify under a different secret")
	}
}
