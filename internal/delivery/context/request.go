// Package context carries request-scoped values (request id, logger, caller) across layers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	callerKey
)

// echoKeyRequestID is the echo.Context key holding the request id.
const echoKeyRequestID = "request_id"

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

// Caller identifies the authenticated user of a request.
type Caller struct {
	UserID int64
	Email  string
}

// GetRequestID returns the request id stored on c. When none was set a new one is
// generated and stored, so every later read within the same request agrees.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	SetRequestID(c, id)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request id, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithCaller attaches the authenticated caller to ctx.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromContext returns the authenticated caller, if any.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey).(Caller)

	return caller, ok
}
