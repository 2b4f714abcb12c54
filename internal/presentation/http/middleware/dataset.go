package middleware

import (
	"net/http"

	"github.com/StoreScope/storescope-go/internal/application/services"
	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/types"
	"github.com/StoreScope/storescope-go/internal/infrastructure/generation"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/performance"
	"github.com/StoreScope/storescope-go/pkg/config"
	"github.com/gin-gonic/gin"
)

const datasetContextKey = "dataset"

// DatasetMiddleware resolves the active dataset for every data route and
// stores it in the request context. Handlers never trigger generation
// themselves.
func DatasetMiddleware(datasetService *services.DatasetService, perfTracker *performance.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		marker := perfTracker.StartOperation("dataset-resolution")

		params := generation.Params{
			Count: config.DatasetRecordCount,
			Seed:  config.DatasetSeed,
		}
		entry := datasetService.Current(params)

		marker.SetSuccess(entry != nil)
		marker.Complete()

		if entry == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "dataset unavailable"})
			return
		}

		c.Set(datasetContextKey, entry)
		c.Next()
	}
}

// GetDatasetEntry fetches the dataset resolved by DatasetMiddleware.
func GetDatasetEntry(c *gin.Context) (*types.DatasetEntry, bool) {
	value, exists := c.Get(datasetContextKey)
	if !exists {
		return nil, false
	}
	entry, ok := value.(*types.DatasetEntry)
	return entry, ok
}
