// Package sentry reports server-side failures to Sentry when a DSN is configured.
package sentry

import (
	"context"
	"log/slog"
	"time"

	"userhub/config"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
)

const flushTimeout = 2 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Reporter captures errors with request tags. A Reporter without a DSN drops everything.
type Reporter struct {
	enabled bool
}

// New initializes the Sentry SDK and flushes buffered events on stop.
func New(params Params) *Reporter {
	cfg := params.Config.Sentry
	if cfg == nil || cfg.DSN == "" {
		params.Logger.Info("Sentry DSN not set, error reporting disabled")

		return &Reporter{}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      params.Config.Env.Env,
		ServerName:       params.Config.Env.ServiceName,
		TracesSampleRate: cfg.TracesSampleRate,
		EnableTracing:    cfg.TracesSampleRate > 0,
	})
	if err != nil {
		// A bad DSN disables reporting instead of failing startup.
		params.Logger.Error("Sentry initialization failed", slog.Any("error", err))

		return &Reporter{}
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sentry.Flush(flushTimeout)

			return nil
		},
	})

	params.Logger.Info("Sentry initialized")

	return &Reporter{enabled: true}
}

// Enabled reports whether events are actually sent.
func (r *Reporter) Enabled() bool {
	return r != nil && r.enabled
}

// CaptureError sends err with the given tags on an isolated scope.
func (r *Reporter) CaptureError(err error, tags map[string]string) {
	if !r.Enabled() || err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}
