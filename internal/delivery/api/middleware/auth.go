package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "userhub/internal/delivery/context"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyEmail  = "email"

	bearerScheme = "bearer"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects the request with 401 unless it carries a valid, unexpired bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || !strings.EqualFold(scheme, bearerScheme) || tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return err
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyEmail, claims.Email)

		ctx := deliverycontext.WithCaller(c.Request().Context(), deliverycontext.Caller{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("user_id", claims.UserID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the authenticated user's id set by Authenticate.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(contextKeyUserID).(int64)

	return userID, ok
}

// GetEmail returns the authenticated user's email set by Authenticate.
func GetEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(contextKeyEmail).(string)

	return email, ok
}
