package get_weekly_schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

type Request struct {
	CourtID   int64
	StartDate time.Time
}

// SlotView is one 30-minute cell of the weekly grid. Prices are quoted for
// a 30 and a 60 minute booking that starts at this slot.
type SlotView struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Tier      domain.PriceTier
	Price30   decimal.Decimal
	Price60   decimal.Decimal
	Available bool
}

type DaySchedule struct {
	Date  time.Time
	Slots []SlotView
}

type Response struct {
	Court *domain.Court
	Days  []DaySchedule
}
