// Package monitoring exposes Prometheus metrics for dataset generation,
// cache behavior, and analytics request handling.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storescope_datasets_generated_total",
		Help: "Total number of synthetic datasets generated.",
	})

	DatasetCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storescope_dataset_cache_hits_total",
		Help: "Total number of dataset cache hits.",
	})

	DatasetCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storescope_dataset_cache_misses_total",
		Help: "Total number of dataset cache misses.",
	})

	ExportedRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storescope_exported_rows_total",
		Help: "Total number of event rows written to CSV exports.",
	})

	FilteredViewRows = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storescope_filtered_view_rows",
		Help:    "Number of rows remaining after filter application.",
		Buckets: []float64{0, 100, 500, 1000, 5000, 10000, 20000, 30000, 50000},
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storescope_http_request_duration_ms",
		Help:    "HTTP request latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"method", "path", "status"})
)
