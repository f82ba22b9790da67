package repository

import (
	"context"
	"errors"

	"poison/internal/domain/entity"
)

// ErrFavoriteNotFound is returned when no favorite exists with the given ID.
var ErrFavoriteNotFound = errors.New("favorite not found")

// ErrFavoriteExists is returned by Create when the (user, drink) pair is
// already present. Callers treat it as a non-fatal outcome, not a failure.
var ErrFavoriteExists = errors.New("favorite already exists")

// FavoriteRepository defines persistence operations for the favorites ledger.
type FavoriteRepository interface {
	// FindByID retrieves a single favorite by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Favorite, error)

	// FindByUserAndDrink retrieves the favorite the user saved for the drink.
	// Returns ErrFavoriteNotFound when the pair is absent. This is a fast-path
	// check only; Create enforces the uniqueness invariant.
	FindByUserAndDrink(ctx context.Context, userID int64, drinkID string) (*entity.Favorite, error)

	// Create persists a new favorite and fills in its generated ID.
	// Returns ErrFavoriteExists when the (user, drink) unique index fires.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes a single favorite by ID.
	Delete(ctx context.Context, id int64) error

	// DeleteByUserID removes every favorite owned by the user.
	DeleteByUserID(ctx context.Context, userID int64) error

	// ListByUserID returns all favorites owned by the user in insertion order.
	ListByUserID(ctx context.Context, userID int64) ([]*entity.Favorite, error)
}
