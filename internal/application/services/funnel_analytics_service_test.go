package services

import (
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/StoreScope/storescope-go/internal/domain/events"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/performance"
)

func quietLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		ChannelLevels:   make(map[logging.Channel]slog.Level),
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return logger
}

func testEvent(id, userID int, date string, eventType events.EventType, price float64) events.Event {
	dt, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return events.Event{
		EventID: id,
		UserID:  userID,
		Date:    dt,
		Event:   eventType,
		Price:   price,
		Month:   events.MonthKey(dt),
	}
}

func TestComputeFunnel(t *testing.T) {
	svc := NewFunnelAnalyticsService(quietLogger(t), performance.NewTracker(nil))

	view := []events.Event{
		testEvent(0, 1, "2024-01-05", events.EventView, 20),
		testEvent(1, 2, "2024-01-06", events.EventView, 50),
		testEvent(2, 1, "2024-01-07", events.EventAddToCart, 80),
		testEvent(3, 1, "2024-01-08", events.EventPurchase, 100),
	}

	m := svc.ComputeFunnel(view)

	if m.UniqueViewers != 2 || m.UniqueCartAdders != 1 || m.UniquePurchasers != 1 {
		t.Fatalf("unique users = %d/%d/%d, want 2/1/1",
			m.UniqueViewers, m.UniqueCartAdders, m.UniquePurchasers)
	}
	if m.ConvViewToAdd != 0.5 {
		t.Errorf("view-to-add conversion = %v, want 0.5", m.ConvViewToAdd)
	}
	if m.ConvAddToPurchase != 1.0 {
		t.Errorf("add-to-purchase conversion = %v, want 1.0", m.ConvAddToPurchase)
	}
	if m.CartAbandonmentRate != 0 {
		t.Errorf("cart abandonment = %v, want 0", m.CartAbandonmentRate)
	}
	if m.AvgOrderValue != 100 {
		t.Errorf("average order value = %v, want 100", m.AvgOrderValue)
	}
}

func TestComputeFunnelStepsOrdered(t *testing.T) {
	svc := NewFunnelAnalyticsService(quietLogger(t), performance.NewTracker(nil))

	view := []events.Event{
		testEvent(0, 1, "2024-01-05", events.EventPurchase, 60),
	}

	m := svc.ComputeFunnel(view)
	if len(m.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(m.Steps))
	}
	for i, want := range events.FunnelOrder {
		if m.Steps[i].Event != want {
			t.Errorf("step %d is %q, want %q", i, m.Steps[i].Event, want)
		}
	}
	// Stages with no events still appear with zero counts
	if m.Steps[0].Count != 0 || m.Steps[2].Count != 1 {
		t.Errorf("step counts = %d/%d/%d, want 0/0/1",
			m.Steps[0].Count, m.Steps[1].Count, m.Steps[2].Count)
	}
}

func TestComputeFunnelEmptyView(t *testing.T) {
	svc := NewFunnelAnalyticsService(quietLogger(t), performance.NewTracker(nil))

	m := svc.ComputeFunnel(nil)

	if m.UniqueViewers != 0 || m.UniqueCartAdders != 0 || m.UniquePurchasers != 0 {
		t.Error("empty view must report zero unique users at every stage")
	}
	if m.ConvViewToAdd != 0 || m.ConvAddToPurchase != 0 {
		t.Error("empty view must report zero conversion rates")
	}
	// Abandonment stays the exact complement of the conversion rate
	if m.CartAbandonmentRate != 1 {
		t.Errorf("cart abandonment on empty view = %v, want 1", m.CartAbandonmentRate)
	}
	if m.AvgOrderValue != 0 {
		t.Errorf("average order value on empty view = %v, want 0", m.AvgOrderValue)
	}
}

func TestComputeFunnelAbandonmentIdentity(t *testing.T) {
	svc := NewFunnelAnalyticsService(quietLogger(t), performance.NewTracker(nil))

	view := []events.Event{
		testEvent(0, 1, "2024-03-01", events.EventAddToCart, 10),
		testEvent(1, 2, "2024-03-02", events.EventAddToCart, 10),
		testEvent(2, 3, "2024-03-03", events.EventAddToCart, 10),
		testEvent(3, 1, "2024-03-04", events.EventPurchase, 25),
	}

	m := svc.ComputeFunnel(view)
	if math.Abs(m.CartAbandonmentRate-(1-m.ConvAddToPurchase)) > 1e-12 {
		t.Errorf("abandonment %v is not the complement of conversion %v",
			m.CartAbandonmentRate, m.ConvAddToPurchase)
	}
}
