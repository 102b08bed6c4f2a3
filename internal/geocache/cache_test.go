package geocache_test

import (
	"log/slog"
	"testing"

	"github.com/jbnu-feel/feelgeo/internal/geocache"
	"github.com/jbnu-feel/feelgeo/internal/models"
	"github.com/jbnu-feel/feelgeo/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCache_LoadAndGet(t *testing.T) {
	t.Parallel()
	mockStore := mocks.NewStore(t)
	cache := geocache.New(slog.Default(), mockStore)
	ctx := t.Context()

	persisted := []geocache.Entry{
		{Key: "addr:a", Value: models.Coordinates{Latitude: 1, Longitude: 2}},
		{Key: "", Value: models.Coordinates{Latitude: 9, Longitude: 9}}, // malformed, skipped
		{Key: "addr:b", Value: models.Coordinates{Latitude: 3, Longitude: 4}},
	}
	mockStore.On("Load", ctx).Return(persisted, nil).Once()

	cache.Load(ctx)

	assert.Equal(t, 2, cache.Len())
	coords, ok := cache.Get("addr:a")
	require.True(t, ok)
	assert.Equal(t, models.Coordinates{Latitude: 1, Longitude: 2}, coords)
	_, ok = cache.Get("addr:missing")
	assert.False(t, ok)
}

func TestCache_LoadFailureStartsEmpty(t *testing.T) {
	t.Parallel()
	mockStore := mocks.NewStore(t)
	cache := geocache.New(slog.Default(), mockStore)
	ctx := t.Context()

	mockStore.On("Load", ctx).Return(nil, assert.AnError).Once()

	cache.Load(ctx)

	assert.Equal(t, 0, cache.Len())
}

func TestCache_SetPersistsSnapshot(t *testing.T) {
	t.Parallel()
	mockStore := mocks.NewStore(t)
	cache := geocache.New(slog.Default(), mockStore)
	ctx := t.Context()

	first := []geocache.Entry{
		{Key: "addr:a", Value: models.Coordinates{Latitude: 1, Longitude: 2}},
	}
	second := []geocache.Entry{
		{Key: "addr:a", Value: models.Coordinates{Latitude: 1, Longitude: 2}},
		{Key: "addr:b", Value: models.Coordinates{Latitude: 3, Longitude: 4}},
	}
	mockStore.On("Save", ctx, first).Return(nil).Once()
	mockStore.On("Save", ctx, second).Return(nil).Once()

	cache.Set(ctx, "addr:a", models.Coordinates{Latitude: 1, Longitude: 2})
	cache.Set(ctx, "addr:b", models.Coordinates{Latitude: 3, Longitude: 4})

	assert.Equal(t, second, cache.Entries())
}

func TestCache_SetOverwritesInPlace(t *testing.T) {
	t.Parallel()
	mockStore := mocks.NewStore(t)
	cache := geocache.New(slog.Default(), mockStore)
	ctx := t.Context()

	mockStore.On("Save", ctx, mock.Anything).Return(nil)

	cache.Set(ctx, "addr:a", models.Coordinates{Latitude: 1, Longitude: 2})
	cache.Set(ctx, "addr:a", models.Coordinates{Latitude: 5, Longitude: 6})

	assert.Equal(t, 1, cache.Len())
	coords, ok := cache.Get("addr:a")
	require.True(t, ok)
	assert.Equal(t, models.Coordinates{Latitude: 5, Longitude: 6}, coords)
}

func TestCache_SaveFailureIsSwallowed(t *testing.T) {
	t.Parallel()
	mockStore := mocks.NewStore(t)
	cache := geocache.New(slog.Default(), mockStore)
	ctx := t.Context()

	mockStore.On("Save", ctx, mock.Anything).Return(assert.AnError).Once()

	cache.Set(ctx, "addr:a", models.Coordinates{Latitude: 1, Longitude: 2})

	// The write failed but the in-memory entry survives.
	coords, ok := cache.Get("addr:a")
	require.True(t, ok)
	assert.Equal(t, models.Coordinates{Latitude: 1, Longitude: 2}, coords)
}
