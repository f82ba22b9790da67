// Package service provides hand-rolled testify mocks for the domain service
// interfaces used by the use case tests.
package service

import (
	"context"
	"time"

	"poison/internal/domain/entity"
	"poison/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokens(userID int64) (string, string, error) {
	args := m.Called(userID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) HashToken(token string) string {
	return m.Called(token).String(0)
}

func (m *MockTokenService) RefreshTokenDuration() time.Duration {
	args := m.Called()
	duration, _ := args.Get(0).(time.Duration)

	return duration
}

// MockCatalogService mocks service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) SearchByName(ctx context.Context, name string) ([]*entity.Drink, error) {
	args := m.Called(ctx, name)
	drinks, _ := args.Get(0).([]*entity.Drink)

	return drinks, args.Error(1)
}

func (m *MockCatalogService) SearchByFirstLetter(ctx context.Context, letter string) ([]*entity.Drink, error) {
	args := m.Called(ctx, letter)
	drinks, _ := args.Get(0).([]*entity.Drink)

	return drinks, args.Error(1)
}

func (m *MockCatalogService) FilterByAlcoholicType(ctx context.Context, kind entity.AlcoholicType) ([]*entity.Drink, error) {
	args := m.Called(ctx, kind)
	drinks, _ := args.Get(0).([]*entity.Drink)

	return drinks, args.Error(1)
}

func (m *MockCatalogService) SearchByIngredient(ctx context.Context, name string) ([]*entity.Drink, error) {
	args := m.Called(ctx, name)
	drinks, _ := args.Get(0).([]*entity.Drink)

	return drinks, args.Error(1)
}

func (m *MockCatalogService) Random(ctx context.Context) (*entity.Drink, error) {
	args := m.Called(ctx)
	drink, _ := args.Get(0).(*entity.Drink)

	return drink, args.Error(1)
}
