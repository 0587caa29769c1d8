// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by both Register and Login.
type AuthOutput struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// CredentialUsecase defines account creation and authentication.
type CredentialUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
