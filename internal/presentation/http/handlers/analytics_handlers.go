// Package handlers contains the gin HTTP handlers for analytics, export,
// dataset lifecycle, auth, and system operations.
package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/StoreScope/storescope-go/internal/application/services"
	"github.com/StoreScope/storescope-go/internal/domain/analytics"
	"github.com/StoreScope/storescope-go/internal/domain/events"
	"github.com/StoreScope/storescope-go/internal/infrastructure/generation"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// AnalyticsHandlers serves the funnel, trend, and dashboard endpoints.
type AnalyticsHandlers struct {
	dashboardService *services.DashboardService
	funnelService    *services.FunnelAnalyticsService
	trendService     *services.TrendAnalyticsService
	logger           *logging.ChanneledLogger
}

// NewAnalyticsHandlers creates analytics handlers.
func NewAnalyticsHandlers(dashboardService *services.DashboardService, funnelService *services.FunnelAnalyticsService, trendService *services.TrendAnalyticsService, logger *logging.ChanneledLogger) *AnalyticsHandlers {
	return &AnalyticsHandlers{
		dashboardService: dashboardService,
		funnelService:    funnelService,
		trendService:     trendService,
		logger:           logger,
	}
}

// parseFilterCriteria reads filter parameters from the query string.
// Omitted parameters default to the identity filter over the full year.
// An events parameter that is present but empty selects nothing, which
// is a valid empty view rather than an error.
func parseFilterCriteria(c *gin.Context) (analytics.FilterCriteria, error) {
	criteria := analytics.FilterCriteria{
		SelectedEvents: append([]events.EventType(nil), events.FunnelOrder...),
		DateStart:      generation.YearStart,
		DateEnd:        generation.YearEnd,
	}

	if raw, present := c.GetQuery("events"); present {
		criteria.SelectedEvents = nil
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			t := events.EventType(part)
			if !t.IsValid() {
				return criteria, fmt.Errorf("unknown event type %q", part)
			}
			criteria.SelectedEvents = append(criteria.SelectedEvents, t)
		}
	}

	if raw, present := c.GetQuery("startDate"); present {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return criteria, fmt.Errorf("invalid startDate %q, expected YYYY-MM-DD", raw)
		}
		criteria.DateStart = parsed
	}

	if raw, present := c.GetQuery("endDate"); present {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return criteria, fmt.Errorf("invalid endDate %q, expected YYYY-MM-DD", raw)
		}
		criteria.DateEnd = parsed
	}

	return criteria, nil
}

// HandleFunnel serves GET /api/v1/analytics/funnel.
func (h *AnalyticsHandlers) HandleFunnel(c *gin.Context) {
	start := time.Now()
	h.logger.Analytics().Debug("Funnel request received", "path", c.Request.URL.Path)

	entry, ok := middleware.GetDatasetEntry(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dataset not resolved"})
		return
	}

	criteria, err := parseFilterCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view := h.dashboardService.Filter(entry, criteria)
	metrics := h.funnelService.ComputeFunnel(view)

	h.logger.Analytics().Info("Funnel request completed",
		"filteredEvents", len(view),
		"duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"funnel": metrics, "filteredEvents": len(view)})
}

// HandleTrends serves GET /api/v1/analytics/trends.
func (h *AnalyticsHandlers) HandleTrends(c *gin.Context) {
	start := time.Now()
	h.logger.Analytics().Debug("Trends request received", "path", c.Request.URL.Path)

	entry, ok := middleware.GetDatasetEntry(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dataset not resolved"})
		return
	}

	criteria, err := parseFilterCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view := h.dashboardService.Filter(entry, criteria)
	trend := h.trendService.ComputeMonthlyTrend(view)

	h.logger.Analytics().Info("Trends request completed",
		"months", len(trend),
		"duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"monthlyTrend": trend, "filteredEvents": len(view)})
}

// HandleDashboard serves GET /api/v1/analytics/dashboard.
func (h *AnalyticsHandlers) HandleDashboard(c *gin.Context) {
	start := time.Now()
	h.logger.Analytics().Debug("Dashboard request received", "path", c.Request.URL.Path)

	entry, ok := middleware.GetDatasetEntry(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dataset not resolved"})
		return
	}

	criteria, err := parseFilterCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vm := h.dashboardService.Render(entry, criteria)

	h.logger.Analytics().Info("Dashboard request completed",
		"filteredEvents", vm.FilteredEvents,
		"duration", time.Since(start))
	c.JSON(http.StatusOK, vm)
}
