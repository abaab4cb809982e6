// Package schedule is the authoritative slot engine: it generates the
// 30-minute slot grid for a court and decides interval conflicts. Both
// the read path (weekly grid) and the write path (create/edit inside the
// booking transaction) go through this package, so there is exactly one
// definition of "occupied".
package schedule

import (
	"fmt"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// GenerateSlots produces the ordered slot grid for a court: fixed
// 30-minute steps from hora_inicio, dropping a trailing partial slot so
// the last end never exceeds hora_fin. Each slot carries its tier and the
// tier's 30/60-minute reference prices. Deterministic and side-effect
// free; an inverted operating window yields an empty grid.
func GenerateSlots(court *domain.Court) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	if !court.OpenTime.IsBefore(court.CloseTime) {
		return slots, nil
	}

	current := court.OpenTime
	for current.IsBefore(court.CloseTime) {
		end, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("schedule: GenerateSlots - slot end for %s: %w", current, err)
		}
		if end.IsAfter(court.CloseTime) {
			break
		}

		tier := court.TierFor(current)
		p30, p60 := court.TierPrices(tier)

		slots = append(slots, domain.Slot{
			StartTime: current,
			EndTime:   end,
			Tier:      tier,
			Price30:   p30,
			Price60:   p60,
		})

		current = end
	}

	return slots, nil
}

// IsAligned reports whether t sits on the 30-minute slot grid.
func IsAligned(t types.TimeString) bool {
	minutes, err := t.Minutes()
	if err != nil {
		return false
	}
	return minutes%domain.SlotDurationMinutes == 0
}
