package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

func testCourt() *domain.Court {
	return &domain.Court{
		ID:           1,
		Name:         "Cancha Central",
		OpenTime:     "08:00",
		CloseTime:    "23:00",
		NightCutoff:  "18:00",
		PriceDay30:   decimal.NewFromInt(25),
		PriceDay60:   decimal.NewFromInt(50),
		PriceNight30: decimal.NewFromInt(35),
		PriceNight60: decimal.NewFromInt(70),
		Active:       true,
	}
}

func TestPrice_DurationFormula(t *testing.T) {
	court := testCourt()

	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		want     string
	}{
		{"day 30min", "10:00", 30, "25.00"},
		{"day 60min", "10:00", 60, "50.00"},
		{"day 90min", "10:00", 90, "75.00"},
		{"day 120min", "10:00", 120, "100.00"},
		{"day 150min linear", "10:00", 150, "125.00"},
		{"day 180min linear", "10:00", 180, "150.00"},
		{"night 30min", "19:00", 30, "35.00"},
		{"night 60min", "19:00", 60, "70.00"},
		{"night 90min", "18:00", 90, "105.00"},
		{"night 120min", "19:00", 120, "140.00"},
		{"night 150min linear", "19:00", 150, "175.00"},
		{"last day slot 17:30", "17:30", 60, "50.00"},
		{"cutoff start is night", "18:00", 60, "70.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := Price(court, tt.start, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cost.StringFixed(2))
		})
	}
}

func TestPrice_RoundsOnceAtTheEnd(t *testing.T) {
	court := testCourt()
	court.PriceDay60 = decimal.RequireFromString("33.33")

	// 150 min linear: 33.33 * 2.5 = 83.325, rounded half away from zero once.
	cost, err := Price(court, "10:00", 150)
	require.NoError(t, err)
	assert.Equal(t, "83.33", cost.StringFixed(2))
}

func TestPrice_DefaultTariffFallback(t *testing.T) {
	court := &domain.Court{
		OpenTime:    "08:00",
		CloseTime:   "22:00",
		NightCutoff: "18:00",
	}

	day, err := Price(court, "10:00", 60)
	require.NoError(t, err)
	assert.Equal(t, "50.00", day.StringFixed(2))

	night, err := Price(court, "20:00", 90)
	require.NoError(t, err)
	assert.Equal(t, "105.00", night.StringFixed(2))
}

func TestPrice_InvalidDuration(t *testing.T) {
	court := testCourt()

	for _, duration := range []int{0, -30, 45, 31} {
		_, err := Price(court, "10:00", duration)
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", duration)
	}
}

func TestPriceWithOverride(t *testing.T) {
	court := testCourt()

	override := decimal.RequireFromString("12.345")
	cost, err := PriceWithOverride(court, "10:00", 60, &override)
	require.NoError(t, err)
	assert.Equal(t, "12.35", cost.StringFixed(2))

	negative := decimal.NewFromInt(-1)
	_, err = PriceWithOverride(court, "10:00", 60, &negative)
	assert.ErrorIs(t, err, ErrNegativePrice)

	cost, err = PriceWithOverride(court, "10:00", 60, nil)
	require.NoError(t, err)
	assert.Equal(t, "50.00", cost.StringFixed(2))
}
