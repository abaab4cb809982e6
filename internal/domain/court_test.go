package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCourt_TierFor(t *testing.T) {
	court := Court{NightCutoff: "18:00"}

	assert.Equal(t, TierDay, court.TierFor("08:00"))
	assert.Equal(t, TierDay, court.TierFor("17:30"))
	assert.Equal(t, TierNight, court.TierFor("18:00")) // cutoff itself is night
	assert.Equal(t, TierNight, court.TierFor("22:30"))
}

func TestCourt_TierPrices(t *testing.T) {
	court := Court{
		PriceDay30:   decimal.NewFromInt(20),
		PriceDay60:   decimal.NewFromInt(38),
		PriceNight30: decimal.NewFromInt(30),
		PriceNight60: decimal.NewFromInt(55),
	}

	p30, p60 := court.TierPrices(TierDay)
	assert.Equal(t, "20.00", p30.StringFixed(2))
	assert.Equal(t, "38.00", p60.StringFixed(2))

	p30, p60 = court.TierPrices(TierNight)
	assert.Equal(t, "30.00", p30.StringFixed(2))
	assert.Equal(t, "55.00", p60.StringFixed(2))
}

func TestCourt_TierPrices_DefaultFallback(t *testing.T) {
	// Courts with no price table fall back to the documented tariff.
	court := Court{}

	p30, p60 := court.TierPrices(TierDay)
	assert.True(t, p30.Equal(DefaultDayPrice30))
	assert.True(t, p60.Equal(DefaultDayPrice60))

	p30, p60 = court.TierPrices(TierNight)
	assert.True(t, p30.Equal(DefaultNightPrice30))
	assert.True(t, p60.Equal(DefaultNightPrice60))

	// A partially priced court keeps what it has.
	court.PriceDay30 = decimal.NewFromInt(18)
	p30, p60 = court.TierPrices(TierDay)
	assert.Equal(t, "18.00", p30.StringFixed(2))
	assert.True(t, p60.Equal(DefaultDayPrice60))
}
