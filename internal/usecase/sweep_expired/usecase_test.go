package sweep_expired

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

type fakeReservationRepo struct {
	mu     sync.Mutex
	stored map[int64]*domain.Reservation
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{stored: make(map[int64]*domain.Reservation)}
	for _, r := range reservations {
		repo.stored[r.ID] = r
	}
	return repo
}

func (f *fakeReservationRepo) GetExpiredPending(_ context.Context, cutoff time.Time) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Reservation
	for _, r := range f.stored {
		if r.Status != domain.StatusPending || r.HasConfirmedPayment() {
			continue
		}
		if r.CreatedAt.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.stored[id]
	if !ok {
		return fmt.Errorf("reservation %d not found", id)
	}
	r.Status = domain.StatusCancelled
	now := time.Now()
	r.CancelledAt = &now
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	events []domain.Event
}

func (f *fakePublisher) Publish(_ context.Context, event domain.Event) error {
	f.events = append(f.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingReservation(id int64, createdAt time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		CourtID:    1,
		CustomerID: 10,
		Date:       createdAt.AddDate(0, 0, 7),
		StartTime:  "18:00",
		EndTime:    "19:00",
		Status:     domain.StatusPending,
		CreatedAt:  createdAt,
	}
}

func TestExecute_CancelsOnlyExpired(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	expired := pendingReservation(1, now.AddDate(0, 0, -4))
	fresh := pendingReservation(2, now.AddDate(0, 0, -1))

	paid := pendingReservation(3, now.AddDate(0, 0, -10))
	status := domain.PaymentConfirmed
	paid.PaymentStatus = &status

	confirmed := pendingReservation(4, now.AddDate(0, 0, -10))
	confirmed.Status = domain.StatusConfirmed

	repo := newFakeRepo(expired, fresh, paid, confirmed)
	publisher := &fakePublisher{}
	uc := New(repo, fakeTxManager{}, publisher, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{Now: now, GraceDays: 3})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, resp.CancelledIDs)
	assert.Equal(t, domain.StatusCancelled, repo.stored[1].Status)
	assert.Equal(t, domain.StatusPending, repo.stored[2].Status)
	assert.Equal(t, domain.StatusPending, repo.stored[3].Status)
	assert.Equal(t, domain.StatusConfirmed, repo.stored[4].Status)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, domain.EventReservationExpired, publisher.events[0].Type)
	assert.Equal(t, int64(1), publisher.events[0].ReservationID)
}

func TestExecute_StrictBoundary(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo(pendingReservation(1, created))
	uc := New(repo, fakeTxManager{}, &fakePublisher{}, nopLogger{})

	// Exactly at created + 3d nothing expires.
	resp, err := uc.Execute(context.Background(), Request{
		Now: time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.CancelledIDs)

	// One minute later it does.
	resp, err = uc.Execute(context.Background(), Request{
		Now: time.Date(2025, 1, 4, 0, 1, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, resp.CancelledIDs)
}

func TestExecute_DefaultGraceApplied(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	// Older than the default grace of 3 days but younger than 5.
	repo := newFakeRepo(pendingReservation(1, now.AddDate(0, 0, -4)))
	uc := New(repo, fakeTxManager{}, &fakePublisher{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{Now: now})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, resp.CancelledIDs)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := New(newFakeRepo(), fakeTxManager{}, &fakePublisher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{GraceDays: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{Now: time.Now(), GraceDays: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PaymentConfirmedBetweenQueryAndLock(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	r := pendingReservation(1, now.AddDate(0, 0, -4))
	repo := newFakeRepo(r)
	uc := New(repo, fakeTxManager{}, &fakePublisher{}, nopLogger{})

	// Simulate a payment landing after the candidate query: the row-level
	// re-check must skip the reservation.
	status := domain.PaymentConfirmed
	r.PaymentStatus = &status
	r.Status = domain.StatusConfirmed

	resp, err := uc.Execute(context.Background(), Request{Now: now, GraceDays: 3})
	require.NoError(t, err)
	assert.Empty(t, resp.CancelledIDs)
	assert.Equal(t, domain.StatusConfirmed, repo.stored[1].Status)
}
