// Package cleanup provides background worker
package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/interfaces"
)

// Worker handles background cache cleanup operations
type Worker struct {
	cache  interfaces.DatasetCache
	config *Config
}

// NewWorker creates a new cleanup worker with injected configuration
func NewWorker(cache interfaces.DatasetCache, config *Config) *Worker {
	return &Worker{
		cache:  cache,
		config: config,
	}
}

// Start begins the cleanup worker routine, using the configured interval
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.config.CleanupInterval)
	defer ticker.Stop()

	log.Printf("Cache cleanup worker started (interval: %v, verbose: %v)",
		w.config.CleanupInterval, w.config.VerboseReporting)

	for {
		select {
		case <-ctx.Done():
			log.Println("Cache cleanup worker stopping...")
			return
		case <-ticker.C:
			w.performCleanup()
		}
	}
}

// performCleanup evicts datasets past their freshness window
func (w *Worker) performCleanup() {
	start := time.Now()

	purged := w.cache.PurgeExpired(time.Now().UTC())

	if purged > 0 {
		log.Printf("Cache cleanup finished: %d expired datasets evicted in %v", purged, time.Since(start))
	} else if w.config.VerboseReporting {
		log.Printf("Cache cleanup completed - no expired datasets found (%v)", time.Since(start))
	}
}
