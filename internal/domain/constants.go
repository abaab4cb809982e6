package domain

import "github.com/shopspring/decimal"

// Slot geometry
const (
	// SlotDurationMinutes is fixed: every bookable boundary sits on a
	// 30-minute grid within a single day.
	SlotDurationMinutes = 30
)

// Reservation policy defaults
const (
	// DefaultGracePeriodDays is how long a pending reservation may stay
	// unpaid before the sweeper cancels it. Tenant-configurable.
	DefaultGracePeriodDays = 3

	MaxNotesLength = 500
)

// Roles supplied by the auth collaborator via X-User-Role. The engine
// trusts them as given.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// IsStaffRole reports whether the role may manage reservations and courts.
func IsStaffRole(role string) bool {
	return role == RoleStaff || role == RoleAdmin
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Fallback prices for courts created before explicit night pricing
// existed. These exact values are load-bearing for historical courts and
// must not change.
var (
	DefaultDayPrice30   = decimal.NewFromInt(25)
	DefaultDayPrice60   = decimal.NewFromInt(50)
	DefaultNightPrice30 = decimal.NewFromInt(35)
	DefaultNightPrice60 = decimal.NewFromInt(70)
)

// InactiveStatuses lists the states excluded from availability checks.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses lists the states that block a slot.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
