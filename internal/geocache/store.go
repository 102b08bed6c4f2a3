// Package geocache persists address-to-coordinates lookups across sessions.
// The cache is write-through: every successful update persists the entire
// snapshot, matching the storage format of the original site so existing
// snapshots remain loadable.
package geocache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbnu-feel/feelgeo/internal/models"
)

// SnapshotKey is the storage key under which the cache snapshot lives.
// The value is versioned; a format change requires a new key.
const SnapshotKey = "feel_geo_cache_v1"

// Entry is a single cached lookup. It serializes as a [key, value] pair,
// the snapshot being an ordered JSON array of such pairs.
type Entry struct {
	Key   string
	Value models.Coordinates
}

// MarshalJSON encodes the entry as a two-element array.
func (e Entry) MarshalJSON() ([]byte, error) {
	buf, err := json.Marshal([2]any{e.Key, e.Value})
	if err != nil {
		return nil, fmt.Errorf("failed to encode cache entry: %w", err)
	}
	return buf, nil
}

// UnmarshalJSON decodes a two-element [key, value] array.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("failed to decode cache entry pair: %w", err)
	}
	if err := json.Unmarshal(pair[0], &e.Key); err != nil {
		return fmt.Errorf("failed to decode cache entry key: %w", err)
	}
	if err := json.Unmarshal(pair[1], &e.Value); err != nil {
		return fmt.Errorf("failed to decode cache entry value: %w", err)
	}
	return nil
}

// Store is the durable backing of the cache. Load is called once at
// startup; Save replaces the whole snapshot. Implementations report
// errors; the cache decides how to degrade.
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}
