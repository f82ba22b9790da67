package impl

import (
	"context"
	"log/slog"
	"unicode"

	deliverycontext "poison/internal/delivery/context"
	"poison/internal/domain/entity"
	domainerrors "poison/internal/domain/errors"
	"poison/internal/domain/service"
	"poison/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. It degrades
// gracefully: when the upstream catalog is unreachable, browsing operations
// return empty results instead of an error.
type catalogService struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Catalog service.CatalogService
	Logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// emptyOnOutage collapses catalog outages into an empty result set.
func (srv *catalogService) emptyOnOutage(ctx context.Context, drinks []*entity.Drink, err error) ([]*entity.Drink, error) {
	if err != nil {
		if errors.Is(err, service.ErrCatalogUnavailable) {
			srv.log(ctx).Warn("Catalog unavailable, returning empty results", slog.Any("error", err))

			return []*entity.Drink{}, nil
		}

		return nil, errors.Wrap(err, "catalog lookup failed")
	}
	if drinks == nil {
		drinks = []*entity.Drink{}
	}

	return drinks, nil
}

// SearchByName finds drinks whose names match the query.
func (srv *catalogService) SearchByName(ctx context.Context, name string) ([]*entity.Drink, error) {
	drinks, err := srv.catalog.SearchByName(ctx, name)

	return srv.emptyOnOutage(ctx, drinks, err)
}

// SearchByFirstLetter finds drinks starting with a single letter.
func (srv *catalogService) SearchByFirstLetter(ctx context.Context, letter string) ([]*entity.Drink, error) {
	runes := []rune(letter)
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "letter must be a single alphabetic character")
	}

	drinks, err := srv.catalog.SearchByFirstLetter(ctx, letter)

	return srv.emptyOnOutage(ctx, drinks, err)
}

// FilterByAlcoholicType lists drinks of the given alcoholic classification.
func (srv *catalogService) FilterByAlcoholicType(ctx context.Context, kind string) ([]*entity.Drink, error) {
	alcoholicType := entity.AlcoholicType(kind)
	if !alcoholicType.Valid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "kind must be Alcoholic or Non_Alcoholic")
	}

	drinks, err := srv.catalog.FilterByAlcoholicType(ctx, alcoholicType)

	return srv.emptyOnOutage(ctx, drinks, err)
}

// SearchByIngredient finds ingredient records matching the query.
func (srv *catalogService) SearchByIngredient(ctx context.Context, ingredient string) ([]*entity.Drink, error) {
	ingredients, err := srv.catalog.SearchByIngredient(ctx, ingredient)

	return srv.emptyOnOutage(ctx, ingredients, err)
}

// Random returns a random drink, or nil when the catalog is unavailable.
func (srv *catalogService) Random(ctx context.Context) (*entity.Drink, error) {
	drink, err := srv.catalog.Random(ctx)
	if err != nil {
		if errors.Is(err, service.ErrCatalogUnavailable) {
			srv.log(ctx).Warn("Catalog unavailable for random pick", slog.Any("error", err))

			return nil, nil
		}

		return nil, errors.Wrap(err, "catalog lookup failed")
	}

	return drink, nil
}
