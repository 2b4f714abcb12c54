// Package generation produces the synthetic e-commerce event dataset.
package generation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/StoreScope/storescope-go/internal/domain/events"
)

const (
	userIDMin = 1
	userIDMax = 2000 // exclusive

	priceMin = 5.0
	priceMax = 300.0

	pView      = 0.60
	pAddToCart = 0.25
	// purchase takes the remaining probability mass (0.15)

	yearDays = 366 // 2024 is a leap year
)

// YearStart and YearEnd bound the generated calendar year.
var (
	YearStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	YearEnd   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Params identifies a generated dataset. Identical params always produce an
// identical dataset, which is what makes cache and persistence keys sound.
type Params struct {
	Count int   `json:"count"`
	Seed  int64 `json:"seed"`
}

// Key returns the cache and persistence key for these params.
func (p Params) Key() string {
	return fmt.Sprintf("n%d:s%d", p.Count, p.Seed)
}

// Generate deterministically produces p.Count events spread over the 2024
// calendar year. Every field is drawn independently of the others; in
// particular price is drawn for every row, not only for purchases.
func Generate(p Params) []events.Event {
	rng := rand.New(rand.NewSource(p.Seed))

	dataset := make([]events.Event, p.Count)
	for i := range dataset {
		userID := userIDMin + rng.Intn(userIDMax-userIDMin)
		date := YearStart.AddDate(0, 0, rng.Intn(yearDays))
		eventType := drawEventType(rng)
		price := math.Round((priceMin+rng.Float64()*(priceMax-priceMin))*100) / 100

		dataset[i] = events.Event{
			EventID: i,
			UserID:  userID,
			Date:    date,
			Event:   eventType,
			Price:   price,
			Month:   events.MonthKey(date),
		}
	}
	return dataset
}

func drawEventType(rng *rand.Rand) events.EventType {
	switch draw := rng.Float64(); {
	case draw < pView:
		return events.EventView
	case draw < pView+pAddToCart:
		return events.EventAddToCart
	default:
		return events.EventPurchase
	}
}
