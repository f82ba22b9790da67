package impl

import (
	"context"
	"testing"

	"poison/internal/domain/entity"
	domainerrors "poison/internal/domain/errors"
	"poison/internal/domain/repository"
	"poison/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_Add_New(t *testing.T) {
	fx := newFavoriteServiceFixture()
	ctx := context.Background()
	input := &usecase.AddFavoriteInput{DrinkID: "11007", DrinkName: "Margarita"}

	fx.favoriteRepo.On("FindByUserAndDrink", ctx, int64(7), "11007").
		Return(nil, repository.ErrFavoriteNotFound)
	fx.favoriteRepo.On("Create", ctx, mock.MatchedBy(func(f *entity.Favorite) bool {
		return f.UserID == 7 && f.DrinkID == "11007"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Favorite).ID = 3
	}).Return(nil)

	output, err := fx.service.Add(ctx, 7, input)

	require.NoError(t, err)
	assert.False(t, output.AlreadyExists)
	assert.Equal(t, int64(3), output.Favorite.ID)
}

func TestFavoriteService_Add_Existing(t *testing.T) {
	fx := newFavoriteServiceFixture()
	ctx := context.Background()
	existing := &entity.Favorite{ID: 3, UserID: 7, DrinkID: "11007", DrinkName: "Margarita"}

	fx.favoriteRepo.On("FindByUserAndDrink", ctx, int64(7), "11007").Return(existing, nil)

	output, err := fx.service.Add(ctx, 7, &usecase.AddFavoriteInput{DrinkID: "11007", DrinkName: "Margarita"})

	require.NoError(t, err)
	assert.True(t, output.AlreadyExists)
	assert.Equal(t, existing, output.Favorite)
	fx.favoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFavoriteService_Add_ConcurrentDuplicate(t *testing.T) {
	fx := newFavoriteServiceFixture()
	ctx := context.Background()
	existing := &entity.Favorite{ID: 3, UserID: 7, DrinkID: "11007"}

	// First lookup misses, the insert hits the unique index, a second lookup
	// finds the row inserted by the concurrent request.
	fx.favoriteRepo.On("FindByUserAndDrink", ctx, int64(7), "11007").
		Return(nil, repository.ErrFavoriteNotFound).Once()
	fx.favoriteRepo.On("Create", ctx, mock.Anything).Return(repository.ErrFavoriteExists)
	fx.favoriteRepo.On("FindByUserAndDrink", ctx, int64(7), "11007").
		Return(existing, nil).Once()

	output, err := fx.service.Add(ctx, 7, &usecase.AddFavoriteInput{DrinkID: "11007", DrinkName: "Margarita"})

	require.NoError(t, err)
	assert.True(t, output.AlreadyExists)
	assert.Equal(t, existing, output.Favorite)
}

func TestFavoriteService_Remove_Success(t *testing.T) {
	fx := newFavoriteServiceFixture()
	ctx := context.Background()
	favorite := &entity.Favorite{ID: 3, UserID: 7, DrinkID: "11007"}

	fx.factory.On("FavoriteRepo").Return(fx.favoriteRepo)
	fx.favoriteRepo.On("FindByID", ctx, int64(3)).Return(favorite, nil)
	fx.favoriteRepo.On("Delete", ctx, int64(3)).Return(nil)

	output, err := fx.service.Remove(ctx, 3, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), output.FavoriteID)
}

func TestFavoriteService_Remove_NotFound(t *testing.T) {
	fx := newFavoriteServiceFixture()
	ctx := context.Background()

	fx.factory.On("FavoriteRepo").Return(fx.favoriteRepo)
	fx.favoriteRepo.On("FindByID", ctx, int64(3)).Return(nil, repository.ErrFavoriteNotFound)

	output, err := fx.service.Remove(ctx, 3, 7)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestFavoriteService_Remove_OtherUsersFavorite(t *testing.T) {
	fx := newFavoriteServiceFixture()
	ctx := context.Background()
	favorite := &entity.Favorite{ID: 3, UserID: 8, DrinkID: "11007"}

	fx.factory.On("FavoriteRepo").Return(fx.favoriteRepo)
	fx.favoriteRepo.On("FindByID", ctx, int64(3)).Return(favorite, nil)

	output, err := fx.service.Remove(ctx, 3, 7)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	fx.favoriteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestFavoriteService_ListForUser(t *testing.T) {
	fx := newFavoriteServiceFixture()
	ctx := context.Background()
	stored := []*entity.Favorite{
		{ID: 1, UserID: 7, DrinkID: "11007"},
		{ID: 2, UserID: 7, DrinkID: "11118"},
	}

	fx.favoriteRepo.On("ListByUserID", ctx, int64(7)).Return(stored, nil)

	favorites, err := fx.service.ListForUser(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, stored, favorites)
}
