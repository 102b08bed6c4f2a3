package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jbnu-feel/feelgeo/internal/geocache"
	"github.com/jbnu-feel/feelgeo/internal/geocoding"
	"github.com/jbnu-feel/feelgeo/internal/metrics"
	"github.com/jbnu-feel/feelgeo/internal/models"
	"github.com/jbnu-feel/feelgeo/internal/normalizer"
	"github.com/jbnu-feel/feelgeo/internal/queue"
)

// CacheKeyPrefix is prepended to the normalized address to form the
// cache key. Kept identical to the original site so persisted snapshots
// remain valid.
const CacheKeyPrefix = "addr:"

// Resolver resolves free-text partner addresses to coordinates. It wires
// the normalizer, the geocode cache, the serialized lookup queue and the
// external provider together, and deduplicates concurrent lookups for the
// same key so each unique address triggers at most one external call.
//
// All failure paths degrade to a nil result ("location unknown"); the
// resolver never caches a negative outcome, so a later call re-attempts.
type Resolver struct {
	log          *slog.Logger           // Logger for logging service activities
	norm         *normalizer.Normalizer // Address canonicalization
	cache        *geocache.Cache        // Durable lookup cache
	queue        *queue.Queue           // Serialized, rate-limited lookup queue
	provider     geocoding.Provider     // External geocoding provider
	providerName string                 // Provider name for metrics labeling
	metrics      *metrics.Metrics       // Metrics for tracking service performance

	mu       sync.Mutex
	inflight map[string]*pendingLookup
}

// pendingLookup is shared by every caller awaiting the same key.
// coords is written exactly once before done is closed.
type pendingLookup struct {
	done   chan struct{}
	coords *models.Coordinates
}

// NewResolver creates a new Resolver instance. The queue must already be
// running (queue.Run) for lookups to make progress.
func NewResolver(
	log *slog.Logger,
	norm *normalizer.Normalizer,
	cache *geocache.Cache,
	lookupQueue *queue.Queue,
	provider geocoding.Provider,
	providerName string,
	appMetrics *metrics.Metrics,
) *Resolver {
	return &Resolver{
		log:          log,
		norm:         norm,
		cache:        cache,
		queue:        lookupQueue,
		provider:     provider,
		providerName: providerName,
		metrics:      appMetrics,
		inflight:     make(map[string]*pendingLookup),
	}
}

// Key returns the cache key for a raw address and optional business name.
func (r *Resolver) Key(address, name string) string {
	return CacheKeyPrefix + r.norm.Normalize(address, name)
}

// Resolve turns a free-text address (optionally suffixed with a business
// name) into coordinates. It returns (nil, nil) when the location is
// unknown: empty address, no geocoder match, disabled provider or a
// provider failure. An error is returned only when the caller's context
// ends before the lookup settles.
func (r *Resolver) Resolve(ctx context.Context, address, name string) (*models.Coordinates, error) {
	normalized := r.norm.Normalize(address, name)
	if normalized == "" {
		return nil, nil
	}
	key := CacheKeyPrefix + normalized

	if coords, ok := r.cache.Get(key); ok {
		r.metrics.CacheHits.Inc()
		return &coords, nil
	}
	r.metrics.CacheMisses.Inc()

	r.mu.Lock()
	if pending, ok := r.inflight[key]; ok {
		r.mu.Unlock()
		r.metrics.DedupJoins.Inc()
		return r.await(ctx, pending)
	}
	pending := &pendingLookup{done: make(chan struct{})}
	r.inflight[key] = pending
	r.mu.Unlock()

	r.metrics.QueueDepth.Inc()
	outcome := r.queue.Enqueue(func(taskCtx context.Context) (*models.Coordinates, error) {
		start := time.Now()
		coords, err := r.provider.Geocode(taskCtx, normalized)
		r.metrics.RequestSeconds.WithLabelValues(r.providerName).Observe(time.Since(start).Seconds())
		return coords, err
	})

	// Settlement must not depend on the first caller sticking around:
	// joiners may still be waiting after it gave up.
	go r.settle(context.WithoutCancel(ctx), key, pending, outcome)

	return r.await(ctx, pending)
}

// ResolvePartner resolves a partner's location, preferring precomputed
// coordinates from the dataset over a geocode lookup.
func (r *Resolver) ResolvePartner(ctx context.Context, partner models.Partner) (*models.Coordinates, error) {
	if partner.Location != nil {
		return partner.Location, nil
	}
	return r.Resolve(ctx, partner.Address, partner.Name)
}

// settle consumes the queue outcome, updates the cache on success and
// notifies every waiting caller.
func (r *Resolver) settle(ctx context.Context, key string, pending *pendingLookup, outcome <-chan queue.Outcome) {
	out := <-outcome
	r.metrics.QueueDepth.Dec()

	switch {
	case errors.Is(out.Err, geocoding.ErrNoResults),
		errors.Is(out.Err, geocoding.ErrUnavailable),
		errors.Is(out.Err, queue.ErrShutDown):
		r.log.DebugContext(ctx, "Lookup yielded no location", "key", key, "reason", out.Err)
		r.metrics.Lookups.WithLabelValues("empty").Inc()
	case out.Err != nil:
		r.log.WarnContext(ctx, "Geocode lookup failed", "key", key, "error", out.Err)
		r.metrics.Lookups.WithLabelValues("error").Inc()
	case out.Coords != nil:
		r.cache.Set(ctx, key, *out.Coords)
		pending.coords = out.Coords
		r.metrics.Lookups.WithLabelValues("success").Inc()
	default:
		r.metrics.Lookups.WithLabelValues("empty").Inc()
	}

	r.mu.Lock()
	delete(r.inflight, key)
	r.mu.Unlock()

	close(pending.done)
}

// await blocks until the pending lookup settles or the caller's context
// ends.
func (r *Resolver) await(ctx context.Context, pending *pendingLookup) (*models.Coordinates, error) {
	select {
	case <-pending.done:
		return pending.coords, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
