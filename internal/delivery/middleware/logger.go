package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"userhub/config"
	deliverycontext "userhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs finished requests. Successful requests are logged only in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is the real one.
			c.Error(err)
		}

		m.logRequest(c, start, err)

		return nil
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	// Choose log level based on status code
	logLevel := slog.LevelInfo
	if res.Status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}
	if res.Status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	if logLevel == slog.LevelInfo && !m.debug {
		return
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	// If there are query parameters, log them too
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	// If there's an error, log error details
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	// The request-scoped logger already carries request_id
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
