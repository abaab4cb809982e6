package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// PriceTier is the day/night pricing bracket of a slot, selected by the
// court's cutoff time.
type PriceTier string

const (
	TierDay   PriceTier = "day"
	TierNight PriceTier = "night"
)

// Court represents a bookable cancha with its operating-hours window and
// two-tier price table.
type Court struct {
	ID          int64
	Name        string
	OpenTime    types.TimeString // hora_inicio
	CloseTime   types.TimeString // hora_fin
	NightCutoff types.TimeString // slots starting at or after this use night prices

	PriceDay30   decimal.Decimal
	PriceDay60   decimal.Decimal
	PriceNight30 decimal.Decimal
	PriceNight60 decimal.Decimal

	Capacity int
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TierFor returns the price tier for a reservation starting at start.
// A start exactly at the cutoff is already night.
func (c *Court) TierFor(start types.TimeString) PriceTier {
	if !start.IsBefore(c.NightCutoff) {
		return TierNight
	}
	return TierDay
}

// TierPrices returns the 30-minute and 60-minute prices of the given
// tier. Courts created before night pricing existed may carry zero night
// prices; the documented defaults keep their historical pricing intact.
func (c *Court) TierPrices(tier PriceTier) (p30, p60 decimal.Decimal) {
	switch tier {
	case TierNight:
		p30, p60 = c.PriceNight30, c.PriceNight60
		if p30.IsZero() {
			p30 = DefaultNightPrice30
		}
		if p60.IsZero() {
			p60 = DefaultNightPrice60
		}
	default:
		p30, p60 = c.PriceDay30, c.PriceDay60
		if p30.IsZero() {
			p30 = DefaultDayPrice30
		}
		if p60.IsZero() {
			p60 = DefaultDayPrice60
		}
	}
	return p30, p60
}
