// Package interfaces defines the cache contracts consumed by services.
package interfaces

import (
	"time"

	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/types"
)

// DatasetCache is the read/write cache surface for generated datasets.
type DatasetCache interface {
	GetDataset(key string) (*types.DatasetEntry, bool)
	SetDataset(key string, entry *types.DatasetEntry)
	InvalidateDataset(key string)
	PurgeExpired(now time.Time) int
	Summary() map[string]any
}
