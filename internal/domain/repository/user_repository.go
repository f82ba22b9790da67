// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"poison/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by an exact, case-sensitive email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// IsDuplicate reports whether any existing user already holds the given
	// phone number or email. Must run inside the same transaction as the
	// insert it guards; the unique indexes remain the concurrency backstop.
	IsDuplicate(ctx context.Context, phoneNumber, email string) (bool, error)

	// Create persists a new user entity and fills in its generated ID.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user row. Favorites and sessions referencing the
	// user are removed in the same transaction by the caller.
	Delete(ctx context.Context, id int64) error
}
