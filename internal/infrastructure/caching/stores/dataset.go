// Package stores provides concrete cache store implementations
package stores

import (
	"sync"
	"time"

	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/types"
)

// DatasetStore caches generated datasets keyed by their generation params.
type DatasetStore struct {
	entries map[string]*types.DatasetEntry
	mu      sync.RWMutex
}

// NewDatasetStore creates a new dataset cache store
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{
		entries: make(map[string]*types.DatasetEntry),
	}
}

// Get returns the entry for key when present and still fresh.
func (ds *DatasetStore) Get(key string) (*types.DatasetEntry, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	entry, exists := ds.entries[key]
	if !exists {
		return nil, false
	}
	if entry.Expired(time.Now().UTC()) {
		return nil, false
	}
	return entry, true
}

// Set stores entry under key, replacing any previous dataset.
func (ds *DatasetStore) Set(key string, entry *types.DatasetEntry) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.entries[key] = entry
}

// Invalidate drops the entry for key.
func (ds *DatasetStore) Invalidate(key string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	delete(ds.entries, key)
}

// PurgeExpired removes entries past their freshness window and returns the
// number evicted.
func (ds *DatasetStore) PurgeExpired(now time.Time) int {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	purged := 0
	for key, entry := range ds.entries {
		if entry.Expired(now) {
			delete(ds.entries, key)
			purged++
		}
	}
	return purged
}

// Summary returns cache status for diagnostics.
func (ds *DatasetStore) Summary() map[string]any {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	now := time.Now().UTC()
	datasets := make([]map[string]any, 0, len(ds.entries))
	for key, entry := range ds.entries {
		datasets = append(datasets, map[string]any{
			"key":         key,
			"events":      len(entry.Events),
			"generatedAt": entry.GeneratedAt,
			"ageSeconds":  int(entry.Age(now).Seconds()),
			"expired":     entry.Expired(now),
		})
	}
	return map[string]any{
		"entries":  len(ds.entries),
		"datasets": datasets,
	}
}
