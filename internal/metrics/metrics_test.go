package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestInit_RegistersWithoutConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	Init(reg)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	// Vectors with no observations gather empty; registration itself must
	// not panic or error, and a second isolated registry must also work.
	_ = families
	Init(prometheus.NewRegistry())
}

func TestMiddleware_RecordsRequests(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/catalog/rows", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}

func TestSanitizePath(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"/catalog/movie/693134", "/catalog/movie/:id"},
		{"/catalog/genres/28", "/catalog/genres/:id"},
		{"/watch/tv/94997", "/watch/tv/:id"},
		{"/catalog/rows", "/catalog/rows"},
		{"/health", "/health"},
	} {
		if got := sanitizePath(tc.in); got != tc.want {
			t.Errorf("sanitizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHandler_ServesExposition(t *testing.T) {
	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty exposition body")
	}
}
