package service_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jbnu-feel/feelgeo/internal/geocache"
	"github.com/jbnu-feel/feelgeo/internal/geocoding"
	"github.com/jbnu-feel/feelgeo/internal/metrics"
	"github.com/jbnu-feel/feelgeo/internal/models"
	"github.com/jbnu-feel/feelgeo/internal/normalizer"
	"github.com/jbnu-feel/feelgeo/internal/queue"
	"github.com/jbnu-feel/feelgeo/internal/service"
	"github.com/jbnu-feel/feelgeo/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestResolver wires a resolver with a mocked provider and store and a
// running lookup queue with a near-zero interval.
func newTestResolver(t *testing.T) (*service.Resolver, *mocks.Provider, *geocache.Cache) {
	t.Helper()

	logger := slog.Default()
	provider := mocks.NewProvider(t)
	store := mocks.NewStore(t)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()

	cache := geocache.New(logger, store)
	lookupQueue := queue.New(time.Millisecond)
	go lookupQueue.Run(t.Context())

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	resolver := service.NewResolver(logger, normalizer.Default(), cache, lookupQueue, provider, "naver", appMetrics)

	return resolver, provider, cache
}

func TestResolver_Resolve(t *testing.T) {
	ctx := t.Context()

	t.Run("empty address resolves to unknown without a lookup", func(t *testing.T) {
		resolver, _, _ := newTestResolver(t)

		coords, err := resolver.Resolve(ctx, "   ", "")

		require.NoError(t, err)
		assert.Nil(t, coords)
	})

	t.Run("successfull lookup is cached for the next call", func(t *testing.T) {
		resolver, provider, cache := newTestResolver(t)
		want := &models.Coordinates{Latitude: 35.8464522, Longitude: 127.1296552}

		provider.On("Geocode", mock.Anything, "전북특별자치도 전주시 덕진구 금암동 123").
			Return(want, nil).Once()

		coords, err := resolver.Resolve(ctx, "금암동 123", "")
		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InEpsilon(t, want.Latitude, coords.Latitude, 0.0001)

		// Second call must be answered from the cache; the provider
		// expectation is Once, so a second call would fail the test.
		again, err := resolver.Resolve(ctx, "금암동 123", "")
		require.NoError(t, err)
		require.NotNil(t, again)
		assert.Equal(t, *coords, *again)

		assert.Equal(t, 1, cache.Len())
	})

	t.Run("concurrent lookups for the same key share one provider call", func(t *testing.T) {
		resolver, provider, _ := newTestResolver(t)
		want := &models.Coordinates{Latitude: 35.84, Longitude: 127.12}

		entered := make(chan struct{})
		release := make(chan struct{})
		provider.On("Geocode", mock.Anything, mock.Anything).
			Run(func(_ mock.Arguments) {
				close(entered)
				<-release
			}).
			Return(want, nil).Once()

		const callers = 4
		results := make([]*models.Coordinates, callers)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[0], _ = resolver.Resolve(ctx, "덕진동 55", "")
		}()

		// Wait until the first lookup occupies the provider, then pile
		// on more callers for the same address.
		<-entered
		for i := 1; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = resolver.Resolve(ctx, "덕진동 55", "")
			}(i)
		}
		close(release)
		wg.Wait()

		for i := range callers {
			require.NotNil(t, results[i], "caller %d", i)
			assert.Equal(t, *want, *results[i], "caller %d", i)
		}
	})

	t.Run("no-match result is not cached", func(t *testing.T) {
		resolver, provider, cache := newTestResolver(t)

		provider.On("Geocode", mock.Anything, mock.Anything).
			Return(nil, geocoding.ErrNoResults).Twice()

		coords, err := resolver.Resolve(ctx, "존재하지 않는 주소 999", "")
		require.NoError(t, err)
		assert.Nil(t, coords)
		assert.Equal(t, 0, cache.Len())

		// The miss was not recorded, so the next call asks the provider
		// again (the Twice expectation).
		coords, err = resolver.Resolve(ctx, "존재하지 않는 주소 999", "")
		require.NoError(t, err)
		assert.Nil(t, coords)
	})

	t.Run("provider failure degrades to unknown location", func(t *testing.T) {
		resolver, provider, _ := newTestResolver(t)

		provider.On("Geocode", mock.Anything, mock.Anything).
			Return(nil, assert.AnError).Once()

		coords, err := resolver.Resolve(ctx, "금암동 123", "")

		require.NoError(t, err)
		assert.Nil(t, coords)
	})

	t.Run("disabled provider degrades to unknown location", func(t *testing.T) {
		logger := slog.Default()
		store := mocks.NewStore(t)
		cache := geocache.New(logger, store)
		lookupQueue := queue.New(time.Millisecond)
		go lookupQueue.Run(t.Context())

		resolver := service.NewResolver(
			logger, normalizer.Default(), cache, lookupQueue,
			geocoding.NewDisabledProvider(logger), "disabled",
			metrics.NewMetrics(prometheus.NewRegistry()),
		)

		coords, err := resolver.Resolve(ctx, "금암동 123", "")

		require.NoError(t, err)
		assert.Nil(t, coords)
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("caller context cancellation does not abort the lookup", func(t *testing.T) {
		resolver, provider, cache := newTestResolver(t)
		want := &models.Coordinates{Latitude: 35.84, Longitude: 127.12}

		entered := make(chan struct{})
		release := make(chan struct{})
		provider.On("Geocode", mock.Anything, mock.Anything).
			Run(func(_ mock.Arguments) {
				close(entered)
				<-release
			}).
			Return(want, nil).Once()

		callerCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() {
			_, err := resolver.Resolve(callerCtx, "덕진동 55", "")
			done <- err
		}()

		<-entered
		cancel()
		require.ErrorIs(t, <-done, context.Canceled)

		// The lookup still settles and lands in the cache.
		close(release)
		require.Eventually(t, func() bool {
			return cache.Len() == 1
		}, time.Second, 5*time.Millisecond)
	})
}

func TestResolver_ResolvePartner(t *testing.T) {
	ctx := t.Context()

	t.Run("precomputed location wins", func(t *testing.T) {
		resolver, _, _ := newTestResolver(t)
		partner := models.Partner{
			Name:     "전주책방",
			Address:  "전주시 완산구 전동 112",
			Location: &models.Coordinates{Latitude: 35.81, Longitude: 127.15},
		}

		coords, err := resolver.ResolvePartner(ctx, partner)

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.Equal(t, *partner.Location, *coords)
	})

	t.Run("falls back to geocoding", func(t *testing.T) {
		resolver, provider, _ := newTestResolver(t)
		want := &models.Coordinates{Latitude: 35.84, Longitude: 127.12}

		provider.On("Geocode", mock.Anything, "전북특별자치도 전주시 덕진구 금암동 123").
			Return(want, nil).Once()

		coords, err := resolver.ResolvePartner(ctx, models.Partner{
			Name:    "만계치킨",
			Address: "금암동 123 만계치킨",
		})

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.Equal(t, *want, *coords)
	})
}

func TestResolver_Key(t *testing.T) {
	resolver, _, _ := newTestResolver(t)

	key := resolver.Key("금암동 123", "")

	assert.Equal(t, "addr:전북특별자치도 전주시 덕진구 금암동 123", key)
}
