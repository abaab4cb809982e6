package schedule

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

func testCourt(open, close, cutoff types.TimeString) *domain.Court {
	return &domain.Court{
		ID:           1,
		OpenTime:     open,
		CloseTime:    close,
		NightCutoff:  cutoff,
		PriceDay30:   decimal.NewFromInt(25),
		PriceDay60:   decimal.NewFromInt(50),
		PriceNight30: decimal.NewFromInt(35),
		PriceNight60: decimal.NewFromInt(70),
		Active:       true,
	}
}

func TestGenerateSlots_FullGrid(t *testing.T) {
	court := testCourt("08:00", "23:00", "18:00")

	slots, err := GenerateSlots(court)
	require.NoError(t, err)
	require.Len(t, slots, 30) // 15 hours, two slots each

	assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("08:30"), slots[0].EndTime)
	assert.Equal(t, domain.TierDay, slots[0].Tier)

	last := slots[len(slots)-1]
	assert.Equal(t, types.TimeString("22:30"), last.StartTime)
	assert.Equal(t, types.TimeString("23:00"), last.EndTime)
	assert.Equal(t, domain.TierNight, last.Tier)

	// Contiguous, no gaps.
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime)
	}
}

func TestGenerateSlots_TierSwitchAtCutoff(t *testing.T) {
	court := testCourt("17:00", "19:00", "18:00")

	slots, err := GenerateSlots(court)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.Equal(t, domain.TierDay, slots[0].Tier)    // 17:00
	assert.Equal(t, domain.TierDay, slots[1].Tier)    // 17:30
	assert.Equal(t, domain.TierNight, slots[2].Tier)  // 18:00, cutoff start is night
	assert.Equal(t, domain.TierNight, slots[3].Tier)  // 18:30
	assert.Equal(t, "70.00", slots[2].Price60.StringFixed(2))
}

func TestGenerateSlots_DropsTrailingPartial(t *testing.T) {
	court := testCourt("08:00", "09:15", "18:00")

	slots, err := GenerateSlots(court)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:00"), slots[len(slots)-1].EndTime)
}

func TestGenerateSlots_EmptyWindows(t *testing.T) {
	for _, court := range []*domain.Court{
		testCourt("22:00", "08:00", "18:00"), // inverted
		testCourt("10:00", "10:00", "18:00"), // zero-width
		testCourt("10:00", "10:15", "18:00"), // shorter than one slot
	} {
		slots, err := GenerateSlots(court)
		require.NoError(t, err)
		assert.Empty(t, slots)
	}
}

func TestIsAligned(t *testing.T) {
	assert.True(t, IsAligned("08:00"))
	assert.True(t, IsAligned("08:30"))
	assert.False(t, IsAligned("08:15"))
	assert.False(t, IsAligned("not a time"))
}
