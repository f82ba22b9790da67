package service

import (
	"context"
	"errors"

	"poison/internal/domain/entity"
)

// ErrCatalogUnavailable is returned by the catalog client when the remote
// lookup service is unreachable or returns a malformed payload. The use case
// layer converts it into an empty result, never a caller-visible fault.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogService is the contract with the external read-only drink catalog.
// All lookups may legitimately return an empty slice.
type CatalogService interface {
	// SearchByName returns drinks whose name matches the query.
	SearchByName(ctx context.Context, name string) ([]*entity.Drink, error)

	// SearchByFirstLetter returns drinks starting with the given letter.
	// The caller guarantees letter is a single alphabetic character.
	SearchByFirstLetter(ctx context.Context, letter string) ([]*entity.Drink, error)

	// FilterByAlcoholicType returns drinks of the given classification.
	FilterByAlcoholicType(ctx context.Context, kind entity.AlcoholicType) ([]*entity.Drink, error)

	// SearchByIngredient returns ingredient records matching the query.
	SearchByIngredient(ctx context.Context, name string) ([]*entity.Drink, error)

	// Random returns a single random drink, or nil when the catalog has none.
	Random(ctx context.Context) (*entity.Drink, error)
}
