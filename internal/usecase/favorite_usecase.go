package usecase

import (
	"context"

	"poison/internal/domain/entity"
)

// AddFavoriteInput captures a catalog drink to save for the calling user.
type AddFavoriteInput struct {
	DrinkID    string `json:"drink_id" validate:"required,max=50"`
	DrinkName  string `json:"drink_name" validate:"required,max=100"`
	DrinkThumb string `json:"drink_thumb" validate:"omitempty,max=200"`
}

// AddFavoriteOutput reports the add outcome. AlreadyExists distinguishes the
// non-fatal duplicate case from a fresh insert.
type AddFavoriteOutput struct {
	Favorite      *entity.Favorite `json:"favorite"`
	AlreadyExists bool             `json:"already_exists"`
}

// RemoveFavoriteOutput confirms which row was deleted.
type RemoveFavoriteOutput struct {
	FavoriteID int64 `json:"favorite_id"`
}

// FavoriteUsecase defines the favorites ledger operations.
type FavoriteUsecase interface {
	// Add saves a drink for the user. A duplicate (user, drink) pair is a
	// non-fatal outcome reported via AlreadyExists, not an error.
	Add(ctx context.Context, userID int64, input *AddFavoriteInput) (*AddFavoriteOutput, error)

	// Remove deletes a favorite. Fails with NotFound when the ID is unknown
	// and Forbidden when the caller does not own it.
	Remove(ctx context.Context, favoriteID, requestingUserID int64) (*RemoveFavoriteOutput, error)

	// ListForUser returns all favorites owned by the user.
	ListForUser(ctx context.Context, userID int64) ([]*entity.Favorite, error)
}
