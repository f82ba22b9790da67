package postgres

import (
	"context"

	"poison/internal/domain/entity"
	domainerrors "poison/internal/domain/errors"
	"poison/internal/domain/repository"
	"poison/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindByID retrieves a single favorite by its unique ID.
func (repo *favoriteRepository) FindByID(ctx context.Context, id int64) (*entity.Favorite, error) {
	var favoriteM model.FavoriteDrinkModel
	if err := repo.db.WithContext(ctx).First(&favoriteM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by id")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindByUserAndDrink retrieves the favorite the user saved for the drink.
func (repo *favoriteRepository) FindByUserAndDrink(ctx context.Context, userID int64, drinkID string) (*entity.Favorite, error) {
	var favoriteM model.FavoriteDrinkModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND drink_id = ?", userID, drinkID).
		First(&favoriteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by user and drink")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// Create persists a new favorite and fills in its generated ID. A unique
// violation on (user_id, drink_id) is reported as ErrFavoriteExists so the
// ledger can treat concurrent duplicate adds as a non-fatal outcome.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrFavoriteExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("owning user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes a single favorite by ID.
func (repo *favoriteRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.FavoriteDrinkModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// DeleteByUserID removes every favorite owned by the user.
func (repo *favoriteRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.FavoriteDrinkModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user's favorites")
	}

	return nil
}

// ListByUserID returns all favorites owned by the user in insertion order.
func (repo *favoriteRepository) ListByUserID(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	var favoriteModels []model.FavoriteDrinkModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&favoriteModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for i := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(&favoriteModels[i]))
	}

	return favorites, nil
}

// toFavoriteDomain converts a GORM FavoriteDrinkModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteDrinkModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:         data.ID,
		UserID:     data.UserID,
		DrinkID:    data.DrinkID,
		DrinkName:  data.DrinkName,
		DrinkThumb: data.DrinkThumb,
		CreatedAt:  data.CreatedAt,
	}
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteDrinkModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteDrinkModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteDrinkModel{
		ID:         data.ID,
		UserID:     data.UserID,
		DrinkID:    data.DrinkID,
		DrinkName:  data.DrinkName,
		DrinkThumb: data.DrinkThumb,
	}
}
