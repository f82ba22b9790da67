// Package repository provides hand-rolled testify mocks for the persistence
// interfaces used by the use case tests.
package repository

import (
	"context"

	"poison/internal/domain/entity"
	"poison/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) IsDuplicate(ctx context.Context, phoneNumber, email string) (bool, error) {
	args := m.Called(ctx, phoneNumber, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockFavoriteRepository mocks repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) FindByID(ctx context.Context, id int64) (*entity.Favorite, error) {
	args := m.Called(ctx, id)
	favorite, _ := args.Get(0).(*entity.Favorite)

	return favorite, args.Error(1)
}

func (m *MockFavoriteRepository) FindByUserAndDrink(ctx context.Context, userID int64, drinkID string) (*entity.Favorite, error) {
	args := m.Called(ctx, userID, drinkID)
	favorite, _ := args.Get(0).(*entity.Favorite)

	return favorite, args.Error(1)
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	return m.Called(ctx, favorite).Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFavoriteRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockFavoriteRepository) ListByUserID(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	args := m.Called(ctx, userID)
	favorites, _ := args.Get(0).([]*entity.Favorite)

	return favorites, args.Error(1)
}

// MockRefreshTokenRepository mocks repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	token, _ := args.Get(0).(*entity.RefreshToken)

	return token, args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.UserRepository)

	return repo
}

func (m *MockRepositoryFactory) FavoriteRepo() repository.FavoriteRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.FavoriteRepository)

	return repo
}

func (m *MockRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.RefreshTokenRepository)

	return repo
}

// MockTransactionManager mocks repository.TransactionManager. Execute runs
// the given function against the factory configured on the mock so tests
// exercise the real closure body.
type MockTransactionManager struct {
	mock.Mock

	Factory *MockRepositoryFactory
}

func NewMockTransactionManager(factory *MockRepositoryFactory) *MockTransactionManager {
	return &MockTransactionManager{Factory: factory}
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
