// Package container wires the application services and their
// infrastructure dependencies in one place.
package container

import (
	"github.com/StoreScope/storescope-go/internal/application/services"
	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/manager"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/performance"
	"github.com/StoreScope/storescope-go/internal/infrastructure/persistence/dataset"
)

// Container holds all singleton services for the application lifetime.
type Container struct {
	DatasetService         *services.DatasetService
	FunnelAnalyticsService *services.FunnelAnalyticsService
	TrendAnalyticsService  *services.TrendAnalyticsService
	ExportService          *services.ExportService
	DashboardService       *services.DashboardService

	CacheManager *manager.Manager
	DatasetRepo  *dataset.Repository
	Logger       *logging.ChanneledLogger
	PerfTracker  *performance.Tracker
}

// NewContainer builds the service graph. datasetRepo may be nil when
// persistence is disabled.
func NewContainer(cacheManager *manager.Manager, datasetRepo *dataset.Repository, logger *logging.ChanneledLogger) *Container {
	perfTracker := performance.NewTracker(nil)

	funnelService := services.NewFunnelAnalyticsService(logger, perfTracker)
	trendService := services.NewTrendAnalyticsService(logger, perfTracker)

	return &Container{
		DatasetService:         services.NewDatasetService(cacheManager, datasetRepo, logger, perfTracker),
		FunnelAnalyticsService: funnelService,
		TrendAnalyticsService:  trendService,
		ExportService:          services.NewExportService(logger),
		DashboardService:       services.NewDashboardService(funnelService, trendService, logger, perfTracker),
		CacheManager:           cacheManager,
		DatasetRepo:            datasetRepo,
		Logger:                 logger,
		PerfTracker:            perfTracker,
	}
}
