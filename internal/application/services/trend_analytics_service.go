package services

import (
	"sort"
	"time"

	"github.com/StoreScope/storescope-go/internal/domain/events"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/performance"
)

// MonthlyPoint is one month of purchase activity.
type MonthlyPoint struct {
	Month     string  `json:"month"`
	Purchases int     `json:"purchases"`
	Revenue   float64 `json:"revenue"`
}

// TrendAnalyticsService computes time-series purchase trends.
type TrendAnalyticsService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewTrendAnalyticsService creates a trend analytics service.
func NewTrendAnalyticsService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *TrendAnalyticsService {
	return &TrendAnalyticsService{logger: logger, perfTracker: perfTracker}
}

// ComputeMonthlyTrend groups purchase events by calendar month. Months
// with no purchases in the view are omitted, and the result is sorted in
// calendar order.
func (s *TrendAnalyticsService) ComputeMonthlyTrend(view []events.Event) []MonthlyPoint {
	marker := s.perfTracker.StartOperation("monthly-trend-computation")
	defer marker.Complete()

	byMonth := make(map[string]*MonthlyPoint)
	for _, ev := range view {
		if ev.Event != events.EventPurchase {
			continue
		}
		point, exists := byMonth[ev.Month]
		if !exists {
			point = &MonthlyPoint{Month: ev.Month}
			byMonth[ev.Month] = point
		}
		point.Purchases++
		point.Revenue += ev.Price
	}

	trend := make([]MonthlyPoint, 0, len(byMonth))
	for _, point := range byMonth {
		trend = append(trend, *point)
	}

	sort.Slice(trend, func(i, j int) bool {
		ti, errI := time.Parse("2006-01", trend[i].Month)
		tj, errJ := time.Parse("2006-01", trend[j].Month)
		if errI != nil || errJ != nil {
			return trend[i].Month < trend[j].Month
		}
		return ti.Before(tj)
	})

	marker.AddMetadata("months", len(trend))
	marker.SetSuccess(true)

	s.logger.Analytics().Debug("Monthly trend computed", "months", len(trend), "viewRows", len(view))
	return trend
}
