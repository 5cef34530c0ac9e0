package monitoring

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
)

var sentryEnabled bool

// InitSentry initializes Sentry when a DSN is configured.
// Returns false when error reporting stays disabled.
func InitSentry(dsn, environment, release string) bool {
	if dsn == "" {
		return false
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          release,
		AttachStacktrace: true,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if event.Tags == nil {
				event.Tags = make(map[string]string)
			}
			event.Tags["app"] = "clashberry-api"
			return event
		},
	}); err != nil {
		log.Error().Err(err).Msg("Failed to initialize Sentry; continuing without error reporting")
		return false
	}

	sentryEnabled = true
	return true
}

// CaptureError reports err to Sentry with the given tags. No-op when Sentry is disabled.
func CaptureError(err error, tags map[string]string) {
	if !sentryEnabled || err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		for key, value := range tags {
			scope.SetTag(key, value)
		}
		sentry.CaptureException(err)
	})
}

// CapturePanic reports a recovered panic value
func CapturePanic(value any, tags map[string]string) {
	if err, ok := value.(error); ok {
		CaptureError(err, tags)
		return
	}
	CaptureError(fmt.Errorf("panic: %v", value), tags)
}

// FlushSentry waits for buffered events to be delivered
func FlushSentry(timeout time.Duration) {
	if sentryEnabled {
		sentry.Flush(timeout)
	}
}
