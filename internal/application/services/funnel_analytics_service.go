package services

import (
	"time"

	"github.com/StoreScope/storescope-go/internal/domain/analytics"
	"github.com/StoreScope/storescope-go/internal/domain/events"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/performance"
)

// FunnelStep holds per-stage counts for one event type.
type FunnelStep struct {
	Event       events.EventType `json:"event"`
	Count       int              `json:"count"`
	UniqueUsers int              `json:"uniqueUsers"`
}

// FunnelMetrics is the full conversion funnel for a filtered view.
type FunnelMetrics struct {
	Steps []FunnelStep `json:"steps"`

	UniqueViewers    int `json:"uniqueViewers"`
	UniqueCartAdders int `json:"uniqueCartAdders"`
	UniquePurchasers int `json:"uniquePurchasers"`

	ConvViewToAdd       float64 `json:"convViewToAdd"`
	ConvAddToPurchase   float64 `json:"convAddToPurchase"`
	CartAbandonmentRate float64 `json:"cartAbandonmentRate"`
	AvgOrderValue       float64 `json:"avgOrderValue"`
}

// FunnelAnalyticsService computes conversion funnel metrics.
type FunnelAnalyticsService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewFunnelAnalyticsService creates a funnel analytics service.
func NewFunnelAnalyticsService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *FunnelAnalyticsService {
	return &FunnelAnalyticsService{logger: logger, perfTracker: perfTracker}
}

// ComputeFunnel derives funnel metrics from a filtered view in a single
// pass. Conversion rates are ratios of unique users across stages, and
// cart abandonment is always the exact complement of the add-to-purchase
// conversion, including when the view is empty.
func (s *FunnelAnalyticsService) ComputeFunnel(view []events.Event) *FunnelMetrics {
	start := time.Now()
	marker := s.perfTracker.StartOperation("funnel-computation")
	defer marker.Complete()

	counts := make(map[events.EventType]int, len(events.FunnelOrder))
	uniques := make(map[events.EventType]map[int]struct{}, len(events.FunnelOrder))
	for _, t := range events.FunnelOrder {
		uniques[t] = make(map[int]struct{})
	}

	var purchasePrices []float64
	for _, ev := range view {
		counts[ev.Event]++
		uniques[ev.Event][ev.UserID] = struct{}{}
		if ev.Event == events.EventPurchase {
			purchasePrices = append(purchasePrices, ev.Price)
		}
	}

	steps := make([]FunnelStep, 0, len(events.FunnelOrder))
	for _, t := range events.FunnelOrder {
		steps = append(steps, FunnelStep{
			Event:       t,
			Count:       counts[t],
			UniqueUsers: len(uniques[t]),
		})
	}

	uniqueViewers := len(uniques[events.EventView])
	uniqueCartAdders := len(uniques[events.EventAddToCart])
	uniquePurchasers := len(uniques[events.EventPurchase])

	convAddToPurchase := analytics.SafeRatio(uniquePurchasers, uniqueCartAdders)

	metrics := &FunnelMetrics{
		Steps:               steps,
		UniqueViewers:       uniqueViewers,
		UniqueCartAdders:    uniqueCartAdders,
		UniquePurchasers:    uniquePurchasers,
		ConvViewToAdd:       analytics.SafeRatio(uniqueCartAdders, uniqueViewers),
		ConvAddToPurchase:   convAddToPurchase,
		CartAbandonmentRate: 1 - convAddToPurchase,
		AvgOrderValue:       analytics.SafeMean(purchasePrices),
	}

	marker.AddMetadata("viewRows", len(view))
	marker.SetSuccess(true)

	s.logger.Analytics().Debug("Funnel computed",
		"viewRows", len(view),
		"uniqueViewers", uniqueViewers,
		"duration", time.Since(start))

	return metrics
}
