package usecase

import (
	"context"

	"poison/internal/domain/entity"
)

// CatalogUsecase exposes the external drink catalog to the delivery layer.
// Catalog outages surface as empty results; browsing never faults the caller.
type CatalogUsecase interface {
	// SearchByName returns drinks whose name matches the query.
	SearchByName(ctx context.Context, name string) ([]*entity.Drink, error)

	// SearchByFirstLetter returns drinks starting with the letter. Fails
	// with ValidationFailed unless letter is one alphabetic character.
	SearchByFirstLetter(ctx context.Context, letter string) ([]*entity.Drink, error)

	// FilterByAlcoholicType returns drinks of the given classification.
	// Fails with ValidationFailed for unknown classifications.
	FilterByAlcoholicType(ctx context.Context, kind string) ([]*entity.Drink, error)

	// SearchByIngredient returns ingredient records matching the query.
	SearchByIngredient(ctx context.Context, name string) ([]*entity.Drink, error)

	// Random returns a single random drink, or nil when none is available.
	Random(ctx context.Context) (*entity.Drink, error)
}
