package handlers

import (
	"net/http"
	"time"

	"github.com/StoreScope/storescope-go/internal/application/services"
	"github.com/StoreScope/storescope-go/internal/infrastructure/generation"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/presentation/http/middleware"
	"github.com/StoreScope/storescope-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// DatasetHandlers serves dataset inspection and regeneration.
type DatasetHandlers struct {
	datasetService *services.DatasetService
	logger         *logging.ChanneledLogger
}

// NewDatasetHandlers creates dataset handlers.
func NewDatasetHandlers(datasetService *services.DatasetService, logger *logging.ChanneledLogger) *DatasetHandlers {
	return &DatasetHandlers{datasetService: datasetService, logger: logger}
}

// HandleDatasetStatus serves GET /api/v1/dataset.
func (h *DatasetHandlers) HandleDatasetStatus(c *gin.Context) {
	entry, ok := middleware.GetDatasetEntry(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dataset not resolved"})
		return
	}

	now := time.Now().UTC()
	c.JSON(http.StatusOK, gin.H{
		"params": gin.H{
			"count": entry.Params.Count,
			"seed":  entry.Params.Seed,
		},
		"events":      len(entry.Events),
		"generatedAt": entry.GeneratedAt.Format(time.RFC3339),
		"ageSeconds":  entry.Age(now).Seconds(),
		"ttlSeconds":  entry.TTL.Seconds(),
	})
}

// HandleRegenerate serves POST /api/v1/dataset/regenerate. Admin only.
func (h *DatasetHandlers) HandleRegenerate(c *gin.Context) {
	start := time.Now()
	h.logger.Dataset().Debug("Dataset regeneration requested")

	params := generation.Params{
		Count: config.DatasetRecordCount,
		Seed:  config.DatasetSeed,
	}
	entry := h.datasetService.Regenerate(params)

	h.logger.Dataset().Info("Dataset regenerated on request",
		"events", len(entry.Events),
		"duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"status":      "regenerated",
		"events":      len(entry.Events),
		"generatedAt": entry.GeneratedAt.Format(time.RFC3339),
	})
}
