// Package analytics contains the pure filtering and aggregation core.
package analytics

import (
	"time"

	"github.com/StoreScope/storescope-go/internal/domain/events"
)

// FilterCriteria selects a subset of the dataset by event type and an
// inclusive date interval.
type FilterCriteria struct {
	SelectedEvents []events.EventType `json:"selectedEvents"`
	DateStart      time.Time          `json:"dateStart"`
	DateEnd        time.Time          `json:"dateEnd"`
}

// Apply returns the order-preserving subsequence of dataset matching the
// criteria. An empty selection or an inverted interval yields an empty view,
// never an error; downstream aggregates handle empty views.
func Apply(dataset []events.Event, criteria FilterCriteria) []events.Event {
	view := make([]events.Event, 0)
	if len(criteria.SelectedEvents) == 0 || criteria.DateEnd.Before(criteria.DateStart) {
		return view
	}

	selected := make(map[events.EventType]struct{}, len(criteria.SelectedEvents))
	for _, et := range criteria.SelectedEvents {
		selected[et] = struct{}{}
	}

	for _, ev := range dataset {
		if _, ok := selected[ev.Event]; !ok {
			continue
		}
		if ev.Date.Before(criteria.DateStart) || ev.Date.After(criteria.DateEnd) {
			continue
		}
		view = append(view, ev)
	}
	return view
}
