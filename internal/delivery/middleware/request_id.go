package middleware

import (
	"log/slog"

	deliverycontext "userhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id from the client and otherwise generates one.
// The id is echoed in the response header.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// validRequestID accepts short printable ASCII ids so they are safe to log and echo.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
