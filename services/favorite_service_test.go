package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrent/constants"
	apperrors "campusrent/errors"
	"campusrent/models"
	"campusrent/repository/memory"
	"campusrent/services"
	"campusrent/services/logger"
)

func testLogger() logger.Logger {
	return logger.NewDefaultLogger(logger.ErrorLevel)
}

func Test_FavoriteService_ToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := services.NewFavoriteService(store.Favorites(), testLogger())

	member, err := svc.Toggle(ctx, "u1", constants.KindRoom, "r1")
	require.NoError(t, err)
	assert.True(t, member)

	set, err := svc.Favorites(ctx, "u1", constants.KindRoom)
	require.NoError(t, err)
	assert.True(t, set.Has("r1"))

	member, err = svc.Toggle(ctx, "u1", constants.KindRoom, "r1")
	require.NoError(t, err)
	assert.False(t, member)

	set, err = svc.Favorites(ctx, "u1", constants.KindRoom)
	require.NoError(t, err)
	assert.False(t, set.Has("r1"))
	assert.Zero(t, store.Favorites().Count())
}

func Test_FavoriteService_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := services.NewFavoriteService(store.Favorites(), testLogger())

	_, err := svc.Toggle(ctx, "u1", constants.KindRoom, "x")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "u1", constants.KindVehicle, "x")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "u2", constants.KindRoom, "x")
	require.NoError(t, err)

	assert.Equal(t, 3, store.Favorites().Count())

	rooms, err := svc.Favorites(ctx, "u1", constants.KindRoom)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, rooms.IDs())

	ok, err := svc.IsFavorite(ctx, "u2", constants.KindVehicle, "x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_FavoriteService_ConcurrentTogglesNeverDuplicate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := services.NewFavoriteService(store.Favorites(), testLogger())

	const toggles = 50
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Toggle(ctx, "u1", constants.KindRoom, "r1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// an even number of toggles lands back on "not a member"
	assert.Zero(t, store.Favorites().Count())

	member, err := svc.Toggle(ctx, "u1", constants.KindRoom, "r1")
	require.NoError(t, err)
	assert.True(t, member)
	assert.Equal(t, 1, store.Favorites().Count())
}

func Test_FavoriteService_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := services.NewFavoriteService(memory.NewStore().Favorites(), testLogger())

	_, err := svc.Toggle(ctx, "", constants.KindRoom, "r1")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Toggle(ctx, "u1", "boat", "r1")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Favorites(ctx, "u1", "boat")
	assert.True(t, apperrors.IsValidation(err))
}

type failingFavorites struct{}

var errStoreDown = errors.New("connection refused")

func (failingFavorites) Exists(context.Context, models.FavoriteKey) (bool, error) {
	return false, errStoreDown
}
func (failingFavorites) Insert(context.Context, *models.Favorite) (bool, error) {
	return false, errStoreDown
}
func (failingFavorites) DeleteByKey(context.Context, models.FavoriteKey) (bool, error) {
	return false, errStoreDown
}
func (failingFavorites) FindByUser(context.Context, string, string) ([]models.Favorite, error) {
	return nil, errStoreDown
}

func Test_FavoriteService_StoreFailureIsTransient(t *testing.T) {
	svc := services.NewFavoriteService(failingFavorites{}, testLogger())

	_, err := svc.Toggle(context.Background(), "u1", constants.KindRoom, "r1")
	assert.True(t, apperrors.IsTransient(err))
	assert.ErrorIs(t, err, errStoreDown)
}
