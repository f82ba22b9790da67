package impl

import (
	"context"
	"log/slog"

	deliverycontext "poison/internal/delivery/context"
	"poison/internal/domain/entity"
	domainerrors "poison/internal/domain/errors"
	"poison/internal/domain/repository"
	"poison/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add saves a drink to the user's favorites. Saving a drink that is already
// a favorite is not an error; the existing favorite is returned with
// AlreadyExists set.
func (srv *favoriteService) Add(ctx context.Context, userID int64, input *usecase.AddFavoriteInput) (*usecase.AddFavoriteOutput, error) {
	srv.log(ctx).Debug("Adding favorite",
		slog.Int64("userID", userID),
		slog.String("drinkID", input.DrinkID))

	existing, err := srv.favoriteRepo.FindByUserAndDrink(ctx, userID, input.DrinkID)
	if err == nil {
		return &usecase.AddFavoriteOutput{Favorite: existing, AlreadyExists: true}, nil
	}
	if !errors.Is(err, repository.ErrFavoriteNotFound) {
		return nil, errors.Wrap(err, "failed to check existing favorite")
	}

	favorite := &entity.Favorite{
		UserID:     userID,
		DrinkID:    input.DrinkID,
		DrinkName:  input.DrinkName,
		DrinkThumb: input.DrinkThumb,
	}

	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		// A concurrent request may have inserted the same pair after the
		// check above; the unique index reports it and we fall back to the
		// stored row.
		if errors.Is(err, repository.ErrFavoriteExists) {
			existing, lookupErr := srv.favoriteRepo.FindByUserAndDrink(ctx, userID, input.DrinkID)
			if lookupErr != nil {
				return nil, errors.Wrap(err, "favorite exists but could not be loaded")
			}

			return &usecase.AddFavoriteOutput{Favorite: existing, AlreadyExists: true}, nil
		}

		return nil, errors.Wrap(err, "failed to create favorite")
	}

	return &usecase.AddFavoriteOutput{Favorite: favorite, AlreadyExists: false}, nil
}

// Remove deletes a favorite by its identifier. Only the owner may remove it.
func (srv *favoriteService) Remove(ctx context.Context, favoriteID, requestingUserID int64) (*usecase.RemoveFavoriteOutput, error) {
	srv.log(ctx).Debug("Removing favorite",
		slog.Int64("userID", requestingUserID),
		slog.Int64("favoriteID", favoriteID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.FavoriteRepo()

		favorite, err := favoriteRepo.FindByID(ctx, favoriteID)
		if err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "favorite not found")
			}

			return errors.Wrap(err, "failed to find favorite")
		}

		if favorite.UserID != requestingUserID {
			return errors.Wrap(domainerrors.ErrForbidden, "favorite belongs to another user")
		}

		if err := favoriteRepo.Delete(ctx, favoriteID); err != nil {
			return errors.Wrap(err, "failed to delete favorite")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.RemoveFavoriteOutput{FavoriteID: favoriteID}, nil
}

// ListForUser returns the user's favorites in insertion order.
func (srv *favoriteService) ListForUser(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}
