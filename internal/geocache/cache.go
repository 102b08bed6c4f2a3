package geocache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jbnu-feel/feelgeo/internal/models"
)

// Cache is the in-memory geocode cache with durable write-through
// persistence. Persistence failures are swallowed: the cache keeps
// working in memory for the rest of the session, only durability is
// lost. Entries never expire.
type Cache struct {
	log   *slog.Logger
	store Store

	mu     sync.RWMutex
	values map[string]models.Coordinates
	order  []string // insertion order, kept so snapshots are stable
}

// New creates an empty Cache backed by the given store.
func New(log *slog.Logger, store Store) *Cache {
	return &Cache{
		log:    log,
		store:  store,
		values: make(map[string]models.Coordinates),
	}
}

// Load reads the durable snapshot once at startup. Malformed or
// unreadable snapshots leave the cache empty; the failure is logged and
// never surfaced.
func (c *Cache) Load(ctx context.Context) {
	entries, err := c.store.Load(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "Failed to load geocode cache snapshot, starting empty", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, entry := range entries {
		if entry.Key == "" {
			continue
		}
		if _, exists := c.values[entry.Key]; !exists {
			c.order = append(c.order, entry.Key)
		}
		c.values[entry.Key] = entry.Value
	}

	c.log.InfoContext(ctx, "Geocode cache snapshot loaded", "entries", len(c.order))
}

// Get returns the cached coordinates for a key.
func (c *Cache) Get(key string) (models.Coordinates, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	coords, ok := c.values[key]
	return coords, ok
}

// Set stores coordinates under a key and persists the whole snapshot.
// A repeat Set with the same key overwrites the value wholesale.
func (c *Cache) Set(ctx context.Context, key string, coords models.Coordinates) {
	c.mu.Lock()
	if _, exists := c.values[key]; !exists {
		c.order = append(c.order, key)
	}
	c.values[key] = coords
	entries := c.snapshotLocked()
	c.mu.Unlock()

	if err := c.store.Save(ctx, entries); err != nil {
		c.log.WarnContext(ctx, "Failed to persist geocode cache snapshot", "error", err)
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// Entries returns a copy of the cache in insertion order.
func (c *Cache) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Cache) snapshotLocked() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, Entry{Key: key, Value: c.values[key]})
	}
	return entries
}
