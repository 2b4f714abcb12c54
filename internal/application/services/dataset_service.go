// Package services contains the business logic services for dataset
// lifecycle, analytics computation, and export.
package services

import (
	"time"

	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/interfaces"
	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/types"
	"github.com/StoreScope/storescope-go/internal/infrastructure/generation"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/monitoring"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/performance"
	"github.com/StoreScope/storescope-go/internal/infrastructure/persistence/dataset"
	"github.com/StoreScope/storescope-go/pkg/config"
)

// DatasetService manages the lifecycle of synthetic datasets across the
// cache and the persistence layer.
type DatasetService struct {
	cache       interfaces.DatasetCache
	repo        *dataset.Repository
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewDatasetService creates a dataset service. The repository may be nil
// when persistence is disabled, in which case datasets live only in memory.
func NewDatasetService(cache interfaces.DatasetCache, repo *dataset.Repository, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *DatasetService {
	return &DatasetService{
		cache:       cache,
		repo:        repo,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Current returns the dataset for the given parameters, generating it on
// demand. Resolution order is cache, then persistence, then generation.
func (s *DatasetService) Current(params generation.Params) *types.DatasetEntry {
	start := time.Now()
	key := params.Key()

	if entry, found := s.cache.GetDataset(key); found {
		monitoring.DatasetCacheHits.Inc()
		s.logger.LogCacheOperation("dataset-lookup", key, true, time.Since(start))
		return entry
	}
	monitoring.DatasetCacheMisses.Inc()
	s.logger.LogCacheOperation("dataset-lookup", key, false, time.Since(start))

	if s.repo != nil {
		entry, found, err := s.repo.Load(key, config.DatasetTTL)
		if err != nil {
			s.logger.LogError(logging.ChannelDataset, "dataset-load", err, map[string]any{"key": key})
		} else if found {
			entry.TTL = config.DatasetTTL
			s.cache.SetDataset(key, entry)
			s.logger.Dataset().Info("Dataset restored from persistence",
				"key", key,
				"events", len(entry.Events),
				"duration", time.Since(start))
			return entry
		}
	}

	return s.Regenerate(params)
}

// Regenerate builds a fresh dataset for the given parameters, caches it,
// and persists it best-effort.
func (s *DatasetService) Regenerate(params generation.Params) *types.DatasetEntry {
	marker := s.perfTracker.StartOperation("dataset-generation")
	defer marker.Complete()

	key := params.Key()
	generated := generation.Generate(params)

	entry := &types.DatasetEntry{
		Params:      params,
		Events:      generated,
		GeneratedAt: time.Now().UTC(),
		TTL:         config.DatasetTTL,
	}
	s.cache.SetDataset(key, entry)
	monitoring.DatasetsGenerated.Inc()

	marker.AddMetadata("key", key)
	marker.AddMetadata("events", len(generated))
	marker.SetSuccess(true)

	s.logger.Dataset().Info("Dataset generated",
		"key", key,
		"events", len(generated),
		"seed", params.Seed)

	if s.repo != nil {
		if err := s.repo.Save(entry); err != nil {
			// Persistence is best-effort, the in-memory dataset stays usable
			s.logger.LogError(logging.ChannelDataset, "dataset-persist", err, map[string]any{"key": key})
		}
	}

	return entry
}
