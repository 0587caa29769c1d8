// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userhub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Implementations expect emails already normalized with entity.NormalizeEmail.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByIDForUpdate retrieves a user and locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by email. Reads go to the primary.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the store-assigned ID and RegistrationDate.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the mutable profile columns of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// List returns one page ordered by registration date (newest first) and the total user count.
	List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error)
}
