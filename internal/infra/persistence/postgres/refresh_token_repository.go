package postgres

import (
	"context"
	"time"

	"poison/internal/domain/entity"
	domainerrors "poison/internal/domain/errors"
	"poison/internal/domain/repository"
	"poison/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// refreshTokenRepository implements the domain.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create persists a new refresh token, representing a user session.
func (repo *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("session user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByHash retrieves a live session by its token hash.
func (repo *refreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	if err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	token := toRefreshTokenDomain(&tokenM)
	if token.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrRefreshTokenExpired
	}

	return token, nil
}

// DeleteByHash removes a session by its token hash. Missing rows are fine;
// logout stays idempotent.
func (repo *refreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh token")
	}

	return nil
}

// DeleteByUserID removes every session bound to the user.
func (repo *refreshTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user's refresh tokens")
	}

	return nil
}

// toRefreshTokenDomain converts a GORM RefreshTokenModel to a domain entity.
func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromRefreshTokenDomain converts a domain entity to a GORM RefreshTokenModel.
func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
	}
}
