package impl

import (
	"io"
	"log/slog"

	"poison/internal/domain/service"
	mockRepo "poison/internal/mocks/repository"
	mockSvc "poison/internal/mocks/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockClaims is the claims payload returned by the token service mocks.
var mockClaims = service.Claims{UserID: 7, Type: "refresh"}

type accountServiceFixture struct {
	service      *accountService
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	tokenRepo    *mockRepo.MockRefreshTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newAccountServiceFixture() *accountServiceFixture {
	factory := &mockRepo.MockRepositoryFactory{}
	userRepo := &mockRepo.MockUserRepository{}
	tokenRepo := &mockRepo.MockRefreshTokenRepository{}
	hasher := &mockSvc.MockPasswordHasher{}
	tokenService := &mockSvc.MockTokenService{}

	return &accountServiceFixture{
		service: &accountService{
			txManager:        mockRepo.NewMockTransactionManager(factory),
			userRepo:         userRepo,
			refreshTokenRepo: tokenRepo,
			hasher:           hasher,
			tokenService:     tokenService,
			logger:           newDiscardLogger(),
		},
		factory:      factory,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// favoriteRepoForFactory registers a favorite repository mock on the
// transaction factory and returns it.
func (f *accountServiceFixture) favoriteRepoForFactory() *mockRepo.MockFavoriteRepository {
	favoriteRepo := &mockRepo.MockFavoriteRepository{}
	f.factory.On("FavoriteRepo").Return(favoriteRepo)

	return favoriteRepo
}

type favoriteServiceFixture struct {
	service      *favoriteService
	factory      *mockRepo.MockRepositoryFactory
	favoriteRepo *mockRepo.MockFavoriteRepository
}

func newFavoriteServiceFixture() *favoriteServiceFixture {
	factory := &mockRepo.MockRepositoryFactory{}
	favoriteRepo := &mockRepo.MockFavoriteRepository{}

	return &favoriteServiceFixture{
		service: &favoriteService{
			txManager:    mockRepo.NewMockTransactionManager(factory),
			favoriteRepo: favoriteRepo,
			logger:       newDiscardLogger(),
		},
		factory:      factory,
		favoriteRepo: favoriteRepo,
	}
}
