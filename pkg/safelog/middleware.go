// middleware.go — HTTP middleware that logs each request using only
// permitted (non-PII) fields from the SafeLogger allowlist.
//
// The middleware does NOT log the full request path — only the path
// prefix (first two segments). This keeps title IDs that appear in
// /watch/ and /catalog/ paths out of the logs.
package safelog

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Middleware returns an http.Handler middleware that logs each request
// using only safe fields.
func Middleware(sl *SafeLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := uuid.New().String()

			wrapped := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			sl.Log(Fields{
				"request_id":  reqID,
				"status":      wrapped.status,
				"method":      r.Method,
				"path_prefix": safePathPrefix(r.URL.Path),
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}

// responseRecorder wraps http.ResponseWriter to capture the status code.
// WriteHeader is called once; subsequent calls are no-ops.
type responseRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *responseRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

// safePathPrefix extracts the first two non-empty path segments.
// "/watch/movie/693134" → "/watch/movie"
// "/catalog/rows/trending" → "/catalog/rows"
// "/health" → "/health"
func safePathPrefix(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	var safe []string
	for _, p := range parts {
		if p != "" {
			safe = append(safe, p)
		}
		if len(safe) == 2 {
			break
		}
	}
	if len(safe) == 0 {
		return "/"
	}
	return "/" + strings.Join(safe, "/")
}
