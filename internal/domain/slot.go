package domain

import (
	"github.com/shopspring/decimal"

	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// Slot is a derived 30-minute bookable unit. Slots are regenerated on
// every availability query and never persisted.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Tier      PriceTier
	// Reference prices of the slot's tier, consumed by the pricing
	// calculator and the UI.
	Price30 decimal.Decimal
	Price60 decimal.Decimal
}
