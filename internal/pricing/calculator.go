// Package pricing computes reservation cost under the two-tier day/night
// rate schedule. All arithmetic stays in decimal; rounding to 2dp happens
// once, at the final output.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

var (
	// ErrInvalidDuration is returned for durations that are not a
	// positive multiple of the 30-minute slot grid.
	ErrInvalidDuration = errors.New("pricing: duration must be a positive multiple of 30 minutes")

	// ErrNegativePrice is returned when a manual override is negative.
	ErrNegativePrice = errors.New("pricing: price must be non-negative")
)

var (
	two   = decimal.NewFromInt(2)
	sixty = decimal.NewFromInt(60)
)

// Price returns the cost of a reservation on court starting at start and
// lasting durationMinutes. The tier (day/night) is selected by the start
// time alone: a reservation starting exactly at the cutoff is night.
//
// The duration formula anchors on the tier's 30- and 60-minute prices:
//
//	d <= 30       -> p30
//	d <= 60       -> p60
//	d <= 90       -> p60 + p30
//	d <= 120      -> p60 * 2
//	d > 120       -> p60 * (d / 60)
//
// Past two hours the schedule intentionally switches to linear hourly
// extrapolation with no extra half-hour term; courts have priced odd
// durations this way since the beginning and invoices depend on it.
func Price(court *domain.Court, start types.TimeString, durationMinutes int) (decimal.Decimal, error) {
	if durationMinutes <= 0 || durationMinutes%domain.SlotDurationMinutes != 0 {
		return decimal.Zero, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}

	p30, p60 := court.TierPrices(court.TierFor(start))

	var cost decimal.Decimal
	switch {
	case durationMinutes <= 30:
		cost = p30
	case durationMinutes <= 60:
		cost = p60
	case durationMinutes <= 90:
		cost = p60.Add(p30)
	case durationMinutes <= 120:
		cost = p60.Mul(two)
	default:
		hours := decimal.NewFromInt(int64(durationMinutes)).Div(sixty)
		cost = p60.Mul(hours)
	}

	return cost.Round(2), nil
}

// PriceWithOverride applies a staff-entered manual price when present,
// otherwise falls back to the calculated price. The override must be
// non-negative.
func PriceWithOverride(court *domain.Court, start types.TimeString, durationMinutes int, override *decimal.Decimal) (decimal.Decimal, error) {
	if override != nil {
		if override.IsNegative() {
			return decimal.Zero, ErrNegativePrice
		}
		return override.Round(2), nil
	}
	return Price(court, start, durationMinutes)
}
