package handlers

import (
	"net/http"
	"time"

	"github.com/StoreScope/storescope-go/internal/application/services"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// ExportHandlers serves CSV downloads of the filtered dataset.
type ExportHandlers struct {
	exportService    *services.ExportService
	dashboardService *services.DashboardService
	logger           *logging.ChanneledLogger
}

// NewExportHandlers creates export handlers.
func NewExportHandlers(exportService *services.ExportService, dashboardService *services.DashboardService, logger *logging.ChanneledLogger) *ExportHandlers {
	return &ExportHandlers{
		exportService:    exportService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// HandleExportCSV serves GET /api/v1/export/csv. The same filter
// parameters as the analytics endpoints apply, so the download always
// matches what the dashboard shows.
func (h *ExportHandlers) HandleExportCSV(c *gin.Context) {
	start := time.Now()
	h.logger.Export().Debug("CSV export request received", "path", c.Request.URL.Path)

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

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="ecommerce_data.csv"`)

	if err := h.exportService.WriteCSV(c.Writer, view); err != nil {
		// Headers are already sent, all we can do is log
		h.logger.LogError(logging.ChannelExport, "csv-export", err, map[string]any{"rows": len(view)})
		return
	}

	h.logger.Export().Info("CSV export completed",
		"rows", len(view),
		"duration", time.Since(start))
}
