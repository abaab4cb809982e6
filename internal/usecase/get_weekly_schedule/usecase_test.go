package get_weekly_schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	courtRepo "github.com/rmarchan/ReservaCanchasService/internal/infra/storage/court"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

type fakeReservationRepo struct {
	// keyed by date in YYYY-MM-DD
	byDate map[string][]*domain.Reservation
}

func (f *fakeReservationRepo) GetByCourtAndDate(_ context.Context, _ int64, date time.Time, _ bool) ([]*domain.Reservation, error) {
	return f.byDate[date.Format(domain.DateFormat)], nil
}

type fakeCourtRepo struct {
	courts map[int64]*domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	c, ok := f.courts[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", courtRepo.ErrCourtNotFound, id)
	}
	return c, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCourt(active bool) *domain.Court {
	return &domain.Court{
		ID:           1,
		Name:         "Cancha Central",
		OpenTime:     "08:00",
		CloseTime:    "22:00",
		NightCutoff:  "18:00",
		PriceDay30:   decimal.NewFromInt(25),
		PriceDay60:   decimal.NewFromInt(50),
		PriceNight30: decimal.NewFromInt(35),
		PriceNight60: decimal.NewFromInt(70),
		Capacity:     10,
		Active:       active,
	}
}

func reservationAt(date time.Time, start, end types.TimeString, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:         100,
		CourtID:    1,
		CustomerID: 42,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
		Cost:       decimal.NewFromInt(70),
	}
}

func TestExecute_SevenDayGrid(t *testing.T) {
	uc := New(
		&fakeReservationRepo{byDate: map[string][]*domain.Reservation{}},
		&fakeCourtRepo{courts: map[int64]*domain.Court{1: testCourt(true)}},
		nopLogger{},
	)

	start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), Request{CourtID: 1, StartDate: start})
	require.NoError(t, err)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, start, resp.Days[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 6), resp.Days[6].Date)

	// 08:00-22:00 is 28 half-hour slots, all free.
	for _, day := range resp.Days {
		require.Len(t, day.Slots, 28)
		for _, slot := range day.Slots {
			assert.True(t, slot.Available)
		}
	}

	first := resp.Days[0].Slots[0]
	assert.Equal(t, types.TimeString("08:00"), first.StartTime)
	assert.Equal(t, domain.TierDay, first.Tier)
	assert.True(t, first.Price60.Equal(decimal.NewFromInt(50)))

	last := resp.Days[0].Slots[27]
	assert.Equal(t, types.TimeString("21:30"), last.StartTime)
	assert.Equal(t, domain.TierNight, last.Tier)
	assert.True(t, last.Price30.Equal(decimal.NewFromInt(35)))
}

func TestExecute_MarksOccupiedSlots(t *testing.T) {
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{byDate: map[string][]*domain.Reservation{
		day.Format(domain.DateFormat): {
			reservationAt(day, "10:00", "11:00", domain.StatusConfirmed),
		},
	}}
	uc := New(repo, &fakeCourtRepo{courts: map[int64]*domain.Court{1: testCourt(true)}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{CourtID: 1, StartDate: day})
	require.NoError(t, err)

	for _, slot := range resp.Days[0].Slots {
		switch slot.StartTime {
		case "10:00", "10:30":
			assert.False(t, slot.Available, "slot %s should be taken", slot.StartTime)
		default:
			assert.True(t, slot.Available, "slot %s should be free", slot.StartTime)
		}
	}

	// Other days of the week are untouched.
	for _, slot := range resp.Days[1].Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{byDate: map[string][]*domain.Reservation{
		day.Format(domain.DateFormat): {
			reservationAt(day, "10:00", "11:00", domain.StatusCancelled),
		},
	}}
	uc := New(repo, &fakeCourtRepo{courts: map[int64]*domain.Court{1: testCourt(true)}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{CourtID: 1, StartDate: day})
	require.NoError(t, err)

	for _, slot := range resp.Days[0].Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_InactiveCourtRendersFullyOccupied(t *testing.T) {
	uc := New(
		&fakeReservationRepo{byDate: map[string][]*domain.Reservation{}},
		&fakeCourtRepo{courts: map[int64]*domain.Court{1: testCourt(false)}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), Request{
		CourtID:   1,
		StartDate: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, day := range resp.Days {
		for _, slot := range day.Slots {
			assert.False(t, slot.Available)
		}
	}
}

func TestExecute_Errors(t *testing.T) {
	uc := New(
		&fakeReservationRepo{byDate: map[string][]*domain.Reservation{}},
		&fakeCourtRepo{courts: map[int64]*domain.Court{1: testCourt(true)}},
		nopLogger{},
	)
	start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), Request{CourtID: 0, StartDate: start})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{CourtID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{CourtID: 99, StartDate: start})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}
