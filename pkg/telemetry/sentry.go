// sentry.go — Sentry error tracking for the CeylonFlix catalog server.
//
// Usage in main.go:
//
//	telemetry.InitSentry(os.Getenv("SENTRY_DSN"), version)
//	defer telemetry.Flush()
//
// Usage in handlers and stores:
//
//	telemetry.CaptureError(err, map[string]string{
//	    "operation": "tier_save",
//	})
package telemetry

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

const serviceName = "ceylonflix"

// InitSentry initializes the Sentry SDK. Call once at process startup.
// dsn may be empty — Sentry will be disabled and every Capture* becomes a
// no-op. release should be the git SHA or version tag.
func InitSentry(dsn, release string) error {
	env := os.Getenv("CEYLONFLIX_ENV")
	if env == "" {
		env = "development"
	}

	if dsn == "" {
		// Sentry disabled — not an error. Log and continue.
		fmt.Fprintf(os.Stderr, "[telemetry] SENTRY_DSN not set — Sentry disabled\n")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,

		// Attach stack traces to all captured messages (not just panics).
		AttachStacktrace: true,

		Tags: map[string]string{
			"service": serviceName,
		},

		// BeforeSend scrubs provider credentials before transmission.
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			return scrubSecrets(event)
		},
	})
	if err != nil {
		return fmt.Errorf("sentry.Init: %w", err)
	}

	return nil
}

// CaptureError sends an error to Sentry with optional context tags.
// tags may include: operation, row, kind. Safe to call when Sentry is
// disabled (dsn was empty).
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// CaptureMessage sends a non-error message to Sentry.
func CaptureMessage(message string, level sentry.Level, tags map[string]string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureMessage(message)
	})
}

// Flush waits for buffered Sentry events to be sent. Call with defer in
// main().
func Flush() {
	sentry.Flush(2 * time.Second)
}

// PanicRecoveryMiddleware catches panics, reports them to Sentry with
// request context, and returns a 500 response.
func PanicRecoveryMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					hub := sentry.CurrentHub().Clone()
					hub.Scope().SetRequest(r)
					hub.Scope().SetTag("service", serviceName)
					hub.Scope().SetTag("panic", "true")

					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("panic: %v", v)
					}
					hub.CaptureException(err)

					// Flush immediately so the event is sent before the
					// response is written.
					hub.Flush(2 * time.Second)

					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// scrubSecrets removes credential material from Sentry events before they
// are transmitted. The TMDB key travels as an api_key query parameter, so
// any captured URL or exception message that embeds one is redacted.
func scrubSecrets(event *sentry.Event) *sentry.Event {
	if event == nil {
		return nil
	}

	if event.Request != nil {
		event.Request.QueryString = scrubQuery(event.Request.QueryString)
		event.Request.URL = ScrubURL(event.Request.URL)

		headers := event.Request.Headers
		for k := range headers {
			switch k {
			case "Authorization", "Cookie", "X-Api-Key":
				headers[k] = "[redacted]"
			}
		}
	}

	for i, ex := range event.Exception {
		event.Exception[i].Value = ScrubURL(ex.Value)
	}

	return event
}

// ScrubURL redacts the api_key query parameter wherever it appears in s.
// Exported because error strings built from TMDB URLs pass through here
// and in tests.
func ScrubURL(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.RawQuery == "" {
		return s
	}
	u.RawQuery = scrubQuery(u.RawQuery)
	return u.String()
}

func scrubQuery(rawQuery string) string {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return rawQuery
	}
	if q.Has("api_key") {
		q.Set("api_key", "[redacted]")
	}
	return q.Encode()
}
