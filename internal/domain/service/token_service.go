package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the bearer tokens.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
type TokenService interface {
	// IssueToken creates a signed token for the given user.
	IssueToken(userID int64, email string) (string, error)

	// ValidateToken checks signature and expiry and returns the embedded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
