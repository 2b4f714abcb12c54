package generation

import (
	"math"
	"testing"

	"github.com/StoreScope/storescope-go/internal/domain/events"
)

func TestGenerateDeterminism(t *testing.T) {
	params := Params{Count: 500, Seed: 42}

	first := Generate(params)
	second := Generate(params)

	if len(first) != len(second) {
		t.Fatalf("runs produced %d and %d events", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateSeedSensitivity(t *testing.T) {
	a := Generate(Params{Count: 200, Seed: 1})
	b := Generate(Params{Count: 200, Seed: 2})

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical datasets")
	}
}

func TestGenerateFieldRanges(t *testing.T) {
	dataset := Generate(Params{Count: 2000, Seed: 42})

	if len(dataset) != 2000 {
		t.Fatalf("got %d events, want 2000", len(dataset))
	}

	for i, ev := range dataset {
		if ev.EventID != i {
			t.Fatalf("event %d has ID %d, IDs must be dense from zero", i, ev.EventID)
		}
		if ev.UserID < 1 || ev.UserID > 1999 {
			t.Errorf("event %d has user_id %d outside [1,1999]", i, ev.UserID)
		}
		if ev.Date.Before(YearStart) || ev.Date.After(YearEnd) {
			t.Errorf("event %d dated %s outside the generated year", i, ev.Date.Format("2006-01-02"))
		}
		if !ev.Event.IsValid() {
			t.Errorf("event %d has invalid type %q", i, ev.Event)
		}
		if ev.Price < 5.0 || ev.Price > 300.0 {
			t.Errorf("event %d has price %v outside [5,300]", i, ev.Price)
		}
		cents := ev.Price * 100
		if math.Abs(cents-math.Round(cents)) > 1e-6 {
			t.Errorf("event %d price %v is not rounded to cents", i, ev.Price)
		}
		if ev.Month != events.MonthKey(ev.Date) {
			t.Errorf("event %d month %q does not match date %s", i, ev.Month, ev.Date.Format("2006-01-02"))
		}
	}
}

func TestGenerateEventDistribution(t *testing.T) {
	const n = 30000
	dataset := Generate(Params{Count: n, Seed: 42})

	counts := make(map[events.EventType]int)
	for _, ev := range dataset {
		counts[ev.Event]++
	}

	expected := map[events.EventType]float64{
		events.EventView:      0.60,
		events.EventAddToCart: 0.25,
		events.EventPurchase:  0.15,
	}

	for eventType, want := range expected {
		got := float64(counts[eventType]) / n
		if math.Abs(got-want) > 0.03 {
			t.Errorf("%s proportion %.4f deviates more than 3%% from %.2f", eventType, got, want)
		}
	}
}

func TestParamsKey(t *testing.T) {
	a := Params{Count: 30000, Seed: 42}
	b := Params{Count: 30000, Seed: 42}
	c := Params{Count: 30000, Seed: 7}

	if a.Key() != b.Key() {
		t.Error("identical params produced different keys")
	}
	if a.Key() == c.Key() {
		t.Error("different seeds produced the same key")
	}
}
