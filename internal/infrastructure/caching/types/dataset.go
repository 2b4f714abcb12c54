// Package types defines cache entry types for dataset caching.
package types

import (
	"time"

	"github.com/StoreScope/storescope-go/internal/domain/events"
	"github.com/StoreScope/storescope-go/internal/infrastructure/generation"
)

// DatasetEntry is a cached, immutable generated dataset stamped with its
// generation time and freshness window. The Events slice must never be
// mutated after the entry is stored; filters copy matching rows out.
type DatasetEntry struct {
	Params      generation.Params `json:"params"`
	Events      []events.Event    `json:"events"`
	GeneratedAt time.Time         `json:"generatedAt"`
	TTL         time.Duration     `json:"ttl"`
}

// Expired reports whether the entry has outlived its freshness window at now.
func (e *DatasetEntry) Expired(now time.Time) bool {
	return now.Sub(e.GeneratedAt) > e.TTL
}

// Age returns how long ago the entry was generated.
func (e *DatasetEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.GeneratedAt)
}
