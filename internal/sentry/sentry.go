// Package sentryutil centralizes Sentry setup and capture helpers so the
// rest of the bot never touches the SDK directly.
package sentryutil

import (
	"time"

	"trendmint/internal/config"
	"trendmint/internal/logger"

	"github.com/getsentry/sentry-go"
)

// Init configures the global Sentry client. Without a DSN every capture is
// a no-op, which is how local development runs.
func Init() {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         config.Cfg.SentryDSN,
		Environment: config.Cfg.SentryEnvironment,
		Release:     config.Cfg.SentryRelease,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			// Never ship chat user identities with events.
			event.User = sentry.User{}
			return event
		},
	})
	if err != nil {
		logger.Warn("sentry init failed", map[string]interface{}{"error": err.Error()})
		return
	}

	if config.Cfg.SentryDSN == "" {
		logger.Info("sentry disabled, no DSN configured", nil)
		return
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("service", "trendmint")
	})
	logger.Info("sentry initialized", map[string]interface{}{
		"environment": config.Cfg.SentryEnvironment,
	})
}

// Flush drains buffered events; deferred from main.
func Flush() { sentry.Flush(2 * time.Second) }

func applyTags(scope *sentry.Scope, tags map[string]string) {
	for k, v := range tags {
		scope.SetTag(k, v)
	}
}

// CaptureError reports err with the given tags. Nil errors are ignored.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		applyTags(scope, tags)
		sentry.CaptureException(err)
	})
}

// CaptureMessage reports a plain message at the given level.
func CaptureMessage(msg string, level sentry.Level, tags map[string]string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		applyTags(scope, tags)
		sentry.CaptureMessage(msg)
	})
}

// LevelWarning exposes sentry.LevelWarning so callers don't import the SDK
// for one constant.
func LevelWarning() sentry.Level { return sentry.LevelWarning }
