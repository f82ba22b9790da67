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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by an exact, case-sensitive email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// IsDuplicate reports whether any existing user already holds the given phone
// number or email. Runs on the caller's transaction; the unique indexes are
// still the last line of defense against concurrent registrations.
func (repo *userRepository) IsDuplicate(ctx context.Context, phoneNumber, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("phone_number = ? OR email = ?", phoneNumber, email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check duplicate phone/email")
	}

	return count > 0, nil
}

// Create persists a new user entity and fills in its generated ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateIdentity.WrapMessage("phone number or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateIdentity.WrapMessage("phone number or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes the user row.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		DateOfBirth:  data.Dob,
		Address:      data.Address,
		City:         data.City,
		State:        data.State,
		Zip:          data.Zip,
		PhoneNumber:  data.PhoneNumber,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Dob:          data.DateOfBirth,
		Address:      data.Address,
		City:         data.City,
		State:        data.State,
		Zip:          data.Zip,
		PhoneNumber:  data.PhoneNumber,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
