// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"userhub/config"
	"userhub/internal/domain/service"
	"userhub/internal/errors"
)

// dummyPassword is hashed once at startup so malformed stored hashes still cost a full comparison.
const dummyPassword = "userhub-dummy-password"

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	dummyHash []byte
}

// NewBcryptHasher builds the hasher with the configured cost.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost builds the hasher with an explicit cost.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy hash")
	}

	return &bcryptHasher{
		cost:      cost,
		dummyHash: dummy,
	}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))

		return false
	}

	// err is nil if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
