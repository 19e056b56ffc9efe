// Package safelog implements the privacy logging policy for request
// logs: every field is checked against an allowlist before it is
// written, and request paths are reduced to a prefix.
//
// Guiding principle: a log line must not contain anything that could
// identify a specific viewer or reveal what they watched, when, or
// from where.
//
// Fields explicitly banned (examples, not exhaustive):
//   - ip, remote_ip, client_ip, x_forwarded_for: viewer network identity
//   - user_agent: browser/device fingerprint
//   - query_string: may contain search terms or API keys
//   - referer, referrer: page context that could identify the viewer
//   - title_id, provider_id: content being watched
package safelog

import (
	"log/slog"
)

// Fields is one log line's worth of structured fields.
type Fields map[string]any

// PermittedFields is the definitive allowlist.
// Add new fields ONLY after privacy review — document the reason here.
var PermittedFields = map[string]struct{}{
	// Request metadata — safe because these describe the HTTP exchange
	// without identifying who made it.
	"request_id": {}, // UUID generated per-request (not viewer-linked)
	"status":     {}, // HTTP response code
	"method":     {}, // HTTP method

	// Path prefix only — e.g. "/catalog/rows" or "/watch/movie". Never the
	// full path, which carries the title being watched.
	"path_prefix": {},

	// Timing — useful for performance analysis, not identifying.
	"duration_ms": {},

	// Catalog source — live, cache, or sample.
	"source": {},

	// Content type of the response body.
	"content_type": {},

	// Error description — must be a technical error string, never
	// including viewer data. E.g. "upstream timeout after 10s", not
	// "tier rejected for viewer X".
	"error": {},

	// Service name (set once per logger instance, always safe).
	"service": {},

	// Message field used by Warn.
	"message": {},

	// Health check specific.
	"event": {},
}

// isPermitted returns true if the field name is in the allowlist.
func isPermitted(field string) bool {
	_, ok := PermittedFields[field]
	return ok
}

// SafeLogger writes request logs containing only permitted fields.
type SafeLogger struct {
	log     *slog.Logger
	service string
}

// New creates a SafeLogger writing through the given slog.Logger.
func New(log *slog.Logger, service string) *SafeLogger {
	return &SafeLogger{log: log, service: service}
}

// Log writes an info-level line with the sanitized fields.
func (s *SafeLogger) Log(f Fields) {
	s.log.Info("request", s.sanitize(f)...)
}

// Warn writes a warn-level line with the sanitized fields plus message.
func (s *SafeLogger) Warn(msg string, f Fields) {
	if f == nil {
		f = Fields{}
	}
	f["message"] = msg
	s.log.Warn("request", s.sanitize(f)...)
}

// sanitize drops every field not on the allowlist and appends the
// service field.
func (s *SafeLogger) sanitize(f Fields) []any {
	args := make([]any, 0, 2*(len(f)+1))
	for k, v := range f {
		if !isPermitted(k) {
			continue
		}
		args = append(args, slog.Any(k, v))
	}
	args = append(args, slog.String("service", s.service))
	return args
}
