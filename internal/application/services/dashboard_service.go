package services

import (
	"time"

	"github.com/StoreScope/storescope-go/internal/domain/analytics"
	"github.com/StoreScope/storescope-go/internal/domain/events"
	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/types"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/monitoring"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/performance"
)

const sampleRowLimit = 10

// DashboardViewModel is the composed payload for the dashboard endpoint.
type DashboardViewModel struct {
	Funnel         *FunnelMetrics           `json:"funnel"`
	MonthlyTrend   []MonthlyPoint           `json:"monthlyTrend"`
	SampleRows     []events.Event           `json:"sampleRows"`
	TotalEvents    int                      `json:"totalEvents"`
	FilteredEvents int                      `json:"filteredEvents"`
	Criteria       analytics.FilterCriteria `json:"criteria"`
}

// DashboardService composes funnel and trend analytics over one filter pass.
type DashboardService struct {
	funnelService *FunnelAnalyticsService
	trendService  *TrendAnalyticsService
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(funnelService *FunnelAnalyticsService, trendService *TrendAnalyticsService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *DashboardService {
	return &DashboardService{
		funnelService: funnelService,
		trendService:  trendService,
		logger:        logger,
		perfTracker:   perfTracker,
	}
}

// Render applies the filter once and computes every dashboard section
// from the same view.
func (s *DashboardService) Render(entry *types.DatasetEntry, criteria analytics.FilterCriteria) *DashboardViewModel {
	start := time.Now()
	marker := s.perfTracker.StartOperation("dashboard-render")
	defer marker.Complete()

	view := analytics.Apply(entry.Events, criteria)
	monitoring.FilteredViewRows.Observe(float64(len(view)))

	sample := view
	if len(sample) > sampleRowLimit {
		sample = sample[:sampleRowLimit]
	}

	vm := &DashboardViewModel{
		Funnel:         s.funnelService.ComputeFunnel(view),
		MonthlyTrend:   s.trendService.ComputeMonthlyTrend(view),
		SampleRows:     sample,
		TotalEvents:    len(entry.Events),
		FilteredEvents: len(view),
		Criteria:       criteria,
	}

	marker.AddMetadata("filteredEvents", len(view))
	marker.SetSuccess(true)

	s.logger.Analytics().Info("Dashboard rendered",
		"totalEvents", len(entry.Events),
		"filteredEvents", len(view),
		"duration", time.Since(start))
	return vm
}

// Filter exposes a single filter application for endpoints that need the
// raw view rather than the composed dashboard.
func (s *DashboardService) Filter(entry *types.DatasetEntry, criteria analytics.FilterCriteria) []events.Event {
	view := analytics.Apply(entry.Events, criteria)
	monitoring.FilteredViewRows.Observe(float64(len(view)))
	return view
}
