// Package performance provides operation tracking and timing markers
// for monitoring StoreScope system performance.
package performance

import (
	"time"
)

// Marker represents a performance tracking marker for operations
type Marker struct {
	ID        string        `json:"id"`
	Operation string        `json:"operation"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`

	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`

	CacheHits   int `json:"cacheHits,omitempty"`
	CacheMisses int `json:"cacheMisses,omitempty"`

	Completed bool `json:"completed"`
}

// Complete marks the operation as finished and calculates duration
func (m *Marker) Complete() {
	if m.Completed {
		return
	}
	m.EndTime = time.Now().UTC()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Completed = true
}

// SetSuccess marks the operation result
func (m *Marker) SetSuccess(success bool) {
	m.Success = success
}

// SetError records an error for the operation and marks it failed
func (m *Marker) SetError(err error) {
	m.Success = false
	if err != nil {
		m.Error = err.Error()
	}
}

// AddMetadata attaches arbitrary context to the marker
func (m *Marker) AddMetadata(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]any)
	}
	m.Metadata[key] = value
}

// AddCacheHit increments the cache hit counter
func (m *Marker) AddCacheHit() {
	m.CacheHits++
}

// AddCacheMiss increments the cache miss counter
func (m *Marker) AddCacheMiss() {
	m.CacheMisses++
}

// GetCacheHitRatio returns the cache hit ratio for this operation
func (m *Marker) GetCacheHitRatio() float64 {
	total := m.CacheHits + m.CacheMisses
	if total == 0 {
		return 0
	}
	return float64(m.CacheHits) / float64(total)
}

// Health status levels reported by the tracker summary.
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
	HealthStatusCritical = "critical"
)
