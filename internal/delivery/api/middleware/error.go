package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"userhub/internal/delivery/api/response"
	deliverycontext "userhub/internal/delivery/context"
	domainerrors "userhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorReporter forwards server-side failures to an external tracker.
type ErrorReporter interface {
	CaptureError(err error, tags map[string]string)
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger   *slog.Logger
	reporter ErrorReporter
}

// NewErrorMiddleware creates a new error handling middleware. reporter may be nil.
func NewErrorMiddleware(logger *slog.Logger, reporter ErrorReporter) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:   logger,
		reporter: reporter,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.report(c, err, appErr.HTTPCode())
		}
		_ = response.AppError(c, appErr)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			m.report(c, err, httpErr.Code)
		}
		_ = response.HTTPError(c, httpErr)

		return
	}

	// Anything else is unexpected; the client only sees a generic message
	m.report(c, err, http.StatusInternalServerError)
	_ = response.InternalServerError(c)
}

func (m *ErrorMiddleware) report(c echo.Context, err error, status int) {
	req := c.Request()
	requestID := deliverycontext.GetRequestID(c)

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
		slog.Any("error", err),
		slog.Int("status", status),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)

	if m.reporter != nil {
		m.reporter.CaptureError(err, map[string]string{
			"request_id": requestID,
			"method":     req.Method,
			"route":      c.Path(),
			"status":     strconv.Itoa(status),
		})
	}
}
