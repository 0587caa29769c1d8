// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"userhub/internal/delivery/api/response"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CredentialHandlerParams holds dependencies for CredentialHandler, injected by Fx.
type CredentialHandlerParams struct {
	fx.In

	CredentialUC usecase.CredentialUsecase
	Logger       *slog.Logger
}

// CredentialHandler serves account registration and login.
type CredentialHandler struct {
	credentialUC usecase.CredentialUsecase
	logger       *slog.Logger
}

// NewCredentialHandler is the constructor for CredentialHandler
func NewCredentialHandler(params CredentialHandlerParams) *CredentialHandler {
	return &CredentialHandler{
		credentialUC: params.CredentialUC,
		logger:       params.Logger,
	}
}

// RegisterRequest represents the request body for registering an account
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=6,bytemax=72"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register handles account registration
func (h *CredentialHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed registration body")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.credentialUC.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output)
}

// Login handles credential authentication
func (h *CredentialHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed login body")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.credentialUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
