package analytics

import (
	"testing"
	"time"

	"github.com/StoreScope/storescope-go/internal/domain/events"
)

func day(d string) time.Time {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		panic(err)
	}
	return t
}

func makeEvent(id, userID int, date string, eventType events.EventType, price float64) events.Event {
	dt := day(date)
	return events.Event{
		EventID: id,
		UserID:  userID,
		Date:    dt,
		Event:   eventType,
		Price:   price,
		Month:   events.MonthKey(dt),
	}
}

func testDataset() []events.Event {
	return []events.Event{
		makeEvent(0, 10, "2024-01-05", events.EventView, 20),
		makeEvent(1, 11, "2024-02-10", events.EventAddToCart, 50),
		makeEvent(2, 10, "2024-03-15", events.EventPurchase, 100),
		makeEvent(3, 12, "2024-03-20", events.EventView, 75),
		makeEvent(4, 11, "2024-12-31", events.EventPurchase, 30),
	}
}

func TestApplyIdentityFilter(t *testing.T) {
	dataset := testDataset()
	criteria := FilterCriteria{
		SelectedEvents: events.FunnelOrder,
		DateStart:      day("2024-01-01"),
		DateEnd:        day("2024-12-31"),
	}

	view := Apply(dataset, criteria)
	if len(view) != len(dataset) {
		t.Fatalf("identity filter returned %d rows, want %d", len(view), len(dataset))
	}
	for i := range view {
		if view[i].EventID != dataset[i].EventID {
			t.Errorf("row %d has event_id %d, want %d (order not preserved)", i, view[i].EventID, dataset[i].EventID)
		}
	}
}

func TestApplyEventSelection(t *testing.T) {
	criteria := FilterCriteria{
		SelectedEvents: []events.EventType{events.EventPurchase},
		DateStart:      day("2024-01-01"),
		DateEnd:        day("2024-12-31"),
	}

	view := Apply(testDataset(), criteria)
	if len(view) != 2 {
		t.Fatalf("got %d purchase rows, want 2", len(view))
	}
	for _, ev := range view {
		if ev.Event != events.EventPurchase {
			t.Errorf("unexpected event type %q in filtered view", ev.Event)
		}
	}
}

func TestApplyEmptySelection(t *testing.T) {
	criteria := FilterCriteria{
		SelectedEvents: nil,
		DateStart:      day("2024-01-01"),
		DateEnd:        day("2024-12-31"),
	}

	view := Apply(testDataset(), criteria)
	if view == nil {
		t.Fatal("empty selection should return an empty slice, not nil")
	}
	if len(view) != 0 {
		t.Fatalf("empty selection returned %d rows, want 0", len(view))
	}
}

func TestApplyInvertedDateRange(t *testing.T) {
	criteria := FilterCriteria{
		SelectedEvents: events.FunnelOrder,
		DateStart:      day("2024-06-01"),
		DateEnd:        day("2024-01-01"),
	}

	view := Apply(testDataset(), criteria)
	if len(view) != 0 {
		t.Fatalf("inverted date range returned %d rows, want 0", len(view))
	}
}

func TestApplyInclusiveDateBounds(t *testing.T) {
	criteria := FilterCriteria{
		SelectedEvents: events.FunnelOrder,
		DateStart:      day("2024-01-05"),
		DateEnd:        day("2024-12-31"),
	}

	view := Apply(testDataset(), criteria)
	if len(view) != 5 {
		t.Fatalf("got %d rows, want 5 (both boundary dates included)", len(view))
	}

	criteria.DateEnd = day("2024-12-30")
	view = Apply(testDataset(), criteria)
	if len(view) != 4 {
		t.Fatalf("got %d rows, want 4 after excluding final day", len(view))
	}
}

func TestApplyCombinedCriteria(t *testing.T) {
	criteria := FilterCriteria{
		SelectedEvents: []events.EventType{events.EventView, events.EventPurchase},
		DateStart:      day("2024-03-01"),
		DateEnd:        day("2024-03-31"),
	}

	view := Apply(testDataset(), criteria)
	if len(view) != 2 {
		t.Fatalf("got %d rows, want 2", len(view))
	}
	if view[0].EventID != 2 || view[1].EventID != 3 {
		t.Errorf("got event IDs %d,%d, want 2,3", view[0].EventID, view[1].EventID)
	}
}
