// Package manager wires the cache stores behind a single facade.
package manager

import (
	"time"

	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/stores"
	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/types"
)

// Manager is the cache facade handed to services and handlers.
type Manager struct {
	datasets *stores.DatasetStore
}

// NewManager creates a cache manager with initialized stores.
func NewManager() *Manager {
	return &Manager{
		datasets: stores.NewDatasetStore(),
	}
}

// GetDataset returns the cached dataset for key when present and fresh.
func (m *Manager) GetDataset(key string) (*types.DatasetEntry, bool) {
	return m.datasets.Get(key)
}

// SetDataset stores a dataset entry under key.
func (m *Manager) SetDataset(key string, entry *types.DatasetEntry) {
	m.datasets.Set(key, entry)
}

// InvalidateDataset drops any cached dataset under key.
func (m *Manager) InvalidateDataset(key string) {
	m.datasets.Invalidate(key)
}

// PurgeExpired evicts stale entries across all stores and returns the count.
func (m *Manager) PurgeExpired(now time.Time) int {
	return m.datasets.PurgeExpired(now)
}

// Summary returns cache status for diagnostics.
func (m *Manager) Summary() map[string]any {
	return m.datasets.Summary()
}
