package telemetry

import (
	"strings"
	"testing"
)

func TestScrubURL_RedactsAPIKey(t *testing.T) {
	in := "https://api.themoviedb.org/3/movie/popular?api_key=5a371fda45fc0bed&page=1"
	out := ScrubURL(in)
	if strings.Contains(out, "5a371fda45fc0bed") {
		t.Errorf("api_key leaked: %q", out)
	}
	if !strings.Contains(out, "api_key=%5Bredacted%5D") {
		t.Errorf("expected redaction marker, got %q", out)
	}
	if !strings.Contains(out, "page=1") {
		t.Errorf("unrelated params must survive, got %q", out)
	}
}

func TestScrubURL_NoQueryPassesThrough(t *testing.T) {
	in := "https://api.themoviedb.org/3/movie/550"
	if out := ScrubURL(in); out != in {
		t.Errorf("ScrubURL(%q) = %q, want unchanged", in, out)
	}
}

func TestCaptureError_NilIsNoOp(t *testing.T) {
	// Must not panic with Sentry uninitialized.
	CaptureError(nil, nil)
}
