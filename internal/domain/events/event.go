// Package events defines the synthetic e-commerce event model.
package events

import "time"

// EventType identifies the funnel stage an event belongs to.
type EventType string

const (
	EventView      EventType = "view"
	EventAddToCart EventType = "add_to_cart"
	EventPurchase  EventType = "purchase"
)

// FunnelOrder is the canonical stage ordering. Every aggregate enumerates all
// three stages in this order, with zero counts for stages a filter excludes.
var FunnelOrder = []EventType{EventView, EventAddToCart, EventPurchase}

// IsValid reports whether t is one of the three canonical event types.
func (t EventType) IsValid() bool {
	switch t {
	case EventView, EventAddToCart, EventPurchase:
		return true
	}
	return false
}

// Event is a single synthetic e-commerce interaction. Price is drawn for
// every row regardless of type; only purchase rows contribute it to any
// aggregate. Month always equals the calendar truncation of Date.
type Event struct {
	EventID int       `json:"event_id"`
	UserID  int       `json:"user_id"`
	Date    time.Time `json:"date"`
	Event   EventType `json:"event"`
	Price   float64   `json:"price"`
	Month   string    `json:"month"`
}

// MonthKey truncates a date to its "YYYY-MM" calendar month.
func MonthKey(date time.Time) string {
	return date.Format("2006-01")
}

// CSVHeader lists the Event field names in record order for tabular exports.
var CSVHeader = []string{"event_id", "user_id", "date", "event", "price", "month"}
