package middleware

import (
	"userhub/config"
	domainerrors "userhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter throttles requests per client IP. A nil or disabled config lets everything through.
func NewRateLimiter(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg == nil || !cfg.Enabled || cfg.Rate <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Skipper: echomiddleware.DefaultSkipper,
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(
			echomiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.Rate),
				Burst:     burst,
				ExpiresIn: cfg.ExpiresIn,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return domainerrors.ErrForbidden.WrapMessage(err.Error())
		},
		DenyHandler: func(_ echo.Context, identifier string, _ error) error {
			return domainerrors.ErrTooManyRequests.WrapMessage(identifier)
		},
	})
}
