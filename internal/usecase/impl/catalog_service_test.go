package impl

import (
	"context"
	"testing"

	"poison/internal/domain/entity"
	domainerrors "poison/internal/domain/errors"
	"poison/internal/domain/service"
	mockSvc "poison/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceFixture() (*catalogService, *mockSvc.MockCatalogService) {
	catalog := &mockSvc.MockCatalogService{}

	return &catalogService{catalog: catalog, logger: newDiscardLogger()}, catalog
}

func TestCatalogService_SearchByName_PassesThrough(t *testing.T) {
	srv, catalog := newCatalogServiceFixture()
	ctx := context.Background()
	found := []*entity.Drink{{ID: "11007", Name: "Margarita"}}

	catalog.On("SearchByName", ctx, "margarita").Return(found, nil)

	drinks, err := srv.SearchByName(ctx, "margarita")

	require.NoError(t, err)
	assert.Equal(t, found, drinks)
}

func TestCatalogService_SearchByName_OutageYieldsEmpty(t *testing.T) {
	srv, catalog := newCatalogServiceFixture()
	ctx := context.Background()

	catalog.On("SearchByName", ctx, "margarita").
		Return(nil, errors.Wrap(service.ErrCatalogUnavailable, "dial tcp: timeout"))

	drinks, err := srv.SearchByName(ctx, "margarita")

	require.NoError(t, err)
	assert.Empty(t, drinks)
	assert.NotNil(t, drinks)
}

func TestCatalogService_SearchByName_NilResultBecomesEmptySlice(t *testing.T) {
	srv, catalog := newCatalogServiceFixture()
	ctx := context.Background()

	catalog.On("SearchByName", ctx, "nonexistent").Return(nil, nil)

	drinks, err := srv.SearchByName(ctx, "nonexistent")

	require.NoError(t, err)
	assert.NotNil(t, drinks)
	assert.Empty(t, drinks)
}

func TestCatalogService_SearchByFirstLetter_RejectsNonLetter(t *testing.T) {
	srv, _ := newCatalogServiceFixture()

	for _, letter := range []string{"", "ab", "1", "%"} {
		drinks, err := srv.SearchByFirstLetter(context.Background(), letter)

		assert.Nil(t, drinks)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "letter %q", letter)
	}
}

func TestCatalogService_SearchByFirstLetter_SingleLetter(t *testing.T) {
	srv, catalog := newCatalogServiceFixture()
	ctx := context.Background()
	found := []*entity.Drink{{ID: "11007", Name: "Margarita"}}

	catalog.On("SearchByFirstLetter", ctx, "m").Return(found, nil)

	drinks, err := srv.SearchByFirstLetter(ctx, "m")

	require.NoError(t, err)
	assert.Equal(t, found, drinks)
}

func TestCatalogService_FilterByAlcoholicType_RejectsUnknownKind(t *testing.T) {
	srv, _ := newCatalogServiceFixture()

	drinks, err := srv.FilterByAlcoholicType(context.Background(), "Mostly_Water")

	assert.Nil(t, drinks)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_FilterByAlcoholicType_AcceptsBothKinds(t *testing.T) {
	srv, catalog := newCatalogServiceFixture()
	ctx := context.Background()

	catalog.On("FilterByAlcoholicType", ctx, entity.Alcoholic).Return([]*entity.Drink{}, nil)
	catalog.On("FilterByAlcoholicType", ctx, entity.NonAlcoholic).Return([]*entity.Drink{}, nil)

	_, err := srv.FilterByAlcoholicType(ctx, "Alcoholic")
	assert.NoError(t, err)

	_, err = srv.FilterByAlcoholicType(ctx, "Non_Alcoholic")
	assert.NoError(t, err)
}

func TestCatalogService_Random_OutageYieldsNil(t *testing.T) {
	srv, catalog := newCatalogServiceFixture()
	ctx := context.Background()

	catalog.On("Random", ctx).Return(nil, service.ErrCatalogUnavailable)

	drink, err := srv.Random(ctx)

	require.NoError(t, err)
	assert.Nil(t, drink)
}

func TestCatalogService_Random_Success(t *testing.T) {
	srv, catalog := newCatalogServiceFixture()
	ctx := context.Background()
	pick := &entity.Drink{ID: "17222", Name: "A1"}

	catalog.On("Random", ctx).Return(pick, nil)

	drink, err := srv.Random(ctx)

	require.NoError(t, err)
	assert.Equal(t, pick, drink)
}
