package performance

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// TrackerConfig controls marker retention in the tracker
type TrackerConfig struct {
	MaxMarkers       int           `json:"maxMarkers"`
	RetentionPeriod  time.Duration `json:"retentionPeriod"`
	SlowOpThreshold  time.Duration `json:"slowOpThreshold"`
	ErrorRateWarning float64       `json:"errorRateWarning"`
}

// DefaultTrackerConfig returns sensible tracker defaults
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		MaxMarkers:       1000,
		RetentionPeriod:  time.Hour,
		SlowOpThreshold:  500 * time.Millisecond,
		ErrorRateWarning: 0.05,
	}
}

// Tracker collects performance markers for completed operations
type Tracker struct {
	markers map[string]*Marker
	mu      sync.RWMutex

	started time.Time
	seq     uint64
	config  *TrackerConfig
}

// NewTracker creates a tracker with the given configuration
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}
	return &Tracker{
		markers: make(map[string]*Marker),
		started: time.Now().UTC(),
		config:  config,
	}
}

// StartOperation begins tracking a new operation and returns its marker
func (t *Tracker) StartOperation(operation string) *Marker {
	seq := atomic.AddUint64(&t.seq, 1)
	marker := &Marker{
		ID:        fmt.Sprintf("%s-%d", operation, seq),
		Operation: operation,
		StartTime: time.Now().UTC(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Evict oldest markers when over capacity
	if len(t.markers) >= t.config.MaxMarkers {
		t.evictOldestLocked()
	}
	t.markers[marker.ID] = marker

	return marker
}

func (t *Tracker) evictOldestLocked() {
	var oldestID string
	var oldestTime time.Time
	for id, m := range t.markers {
		if oldestID == "" || m.StartTime.Before(oldestTime) {
			oldestID = id
			oldestTime = m.StartTime
		}
	}
	if oldestID != "" {
		delete(t.markers, oldestID)
	}
}

// GetSummary returns aggregate statistics across tracked operations
func (t *Tracker) GetSummary() map[string]any {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var completed, failed, slow int
	var totalDuration time.Duration

	for _, m := range t.markers {
		if !m.Completed {
			continue
		}
		completed++
		totalDuration += m.Duration
		if !m.Success {
			failed++
		}
		if m.Duration > t.config.SlowOpThreshold {
			slow++
		}
	}

	var avgDuration time.Duration
	var errorRate float64
	if completed > 0 {
		avgDuration = totalDuration / time.Duration(completed)
		errorRate = float64(failed) / float64(completed)
	}

	status := HealthStatusHealthy
	if errorRate > t.config.ErrorRateWarning {
		status = HealthStatusDegraded
	}
	if completed > 0 && errorRate > 0.25 {
		status = HealthStatusCritical
	}

	return map[string]any{
		"status":             status,
		"trackedOperations":  len(t.markers),
		"completedOps":       completed,
		"failedOps":          failed,
		"slowOps":            slow,
		"avgDurationMs":      float64(avgDuration.Microseconds()) / 1000.0,
		"errorRate":          errorRate,
		"trackerUptimeHours": time.Since(t.started).Hours(),
	}
}

// PurgeStale removes completed markers older than the retention period
func (t *Tracker) PurgeStale() int {
	cutoff := time.Now().UTC().Add(-t.config.RetentionPeriod)

	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for id, m := range t.markers {
		if m.Completed && m.EndTime.Before(cutoff) {
			delete(t.markers, id)
			removed++
		}
	}
	return removed
}
