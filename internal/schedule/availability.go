package schedule

import (
	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching boundaries do not conflict: a
// reservation ending 11:30 and one starting 11:30 coexist.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// FindConflict returns the first non-cancelled reservation whose interval
// overlaps [start,end), or nil. excludeID skips the reservation being
// edited (0 excludes nothing). The read path uses this for the advisory
// grid; the booking transaction re-runs it over FOR UPDATE rows.
func FindConflict(reservations []*domain.Reservation, start, end types.TimeString, excludeID int64) *domain.Reservation {
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if Overlaps(start, end, r.StartTime, r.EndTime) {
			return r
		}
	}
	return nil
}

// IsOccupied reports whether any non-cancelled reservation overlaps
// [start,end).
func IsOccupied(reservations []*domain.Reservation, start, end types.TimeString) bool {
	return FindConflict(reservations, start, end, 0) != nil
}
