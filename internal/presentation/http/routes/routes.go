// Package routes wires the HTTP route tree onto a gin engine.
package routes

import (
	"github.com/StoreScope/storescope-go/internal/application/container"
	"github.com/StoreScope/storescope-go/internal/presentation/http/handlers"
	"github.com/StoreScope/storescope-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes builds the gin engine with all middleware and routes.
func SetupRoutes(ctn *container.Container) (*gin.Engine, error) {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.MetricsMiddleware())

	authHandlers, err := handlers.NewAuthHandlers(ctn.Logger)
	if err != nil {
		return nil, err
	}
	analyticsHandlers := handlers.NewAnalyticsHandlers(ctn.DashboardService, ctn.FunnelAnalyticsService, ctn.TrendAnalyticsService, ctn.Logger)
	exportHandlers := handlers.NewExportHandlers(ctn.ExportService, ctn.DashboardService, ctn.Logger)
	datasetHandlers := handlers.NewDatasetHandlers(ctn.DatasetService, ctn.Logger)
	sysOpHandlers := handlers.NewSysOpHandlers(ctn.CacheManager, ctn.PerfTracker, ctn.Logger)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/health", sysOpHandlers.HandleHealth)
		api.POST("/auth/login", authHandlers.HandleLogin)

		data := api.Group("")
		data.Use(middleware.DatasetMiddleware(ctn.DatasetService, ctn.PerfTracker))
		{
			data.GET("/analytics/funnel", analyticsHandlers.HandleFunnel)
			data.GET("/analytics/trends", analyticsHandlers.HandleTrends)
			data.GET("/analytics/dashboard", analyticsHandlers.HandleDashboard)
			data.GET("/export/csv", exportHandlers.HandleExportCSV)
			data.GET("/dataset", datasetHandlers.HandleDatasetStatus)
		}

		admin := api.Group("")
		admin.Use(authHandlers.AdminMiddleware())
		{
			admin.POST("/dataset/regenerate", datasetHandlers.HandleRegenerate)
			admin.GET("/sysop/logs/levels", sysOpHandlers.GetLogLevels)
			admin.POST("/sysop/logs/levels", sysOpHandlers.SetLogLevel)
		}
	}

	return r, nil
}
