package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/internal/infra/storage/court"
	"github.com/rmarchan/ReservaCanchasService/pkg/ptr"
)

type fakeReservationRepo struct {
	mu     sync.Mutex
	nextID int64
	stored []*domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	created := *r
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.stored = append(f.stored, &created)
	return &created, nil
}

func (f *fakeReservationRepo) GetByCourtAndDate(_ context.Context, courtID int64, date time.Time, includeInactive bool) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Reservation
	for _, r := range f.stored {
		if r.CourtID != courtID || !r.Date.Equal(date) {
			continue
		}
		if !includeInactive && r.IsCancelled() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeCourtRepo struct {
	courts map[int64]*domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	c, ok := f.courts[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", court.ErrCourtNotFound, id)
	}
	return c, nil
}

// fakeTxManager serializes transactions with a mutex, which is exactly the
// guarantee the usecase relies on for the check-then-insert sequence.
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (f *fakePublisher) Publish(_ context.Context, event domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCourt() *domain.Court {
	return &domain.Court{
		ID:           1,
		Name:         "Cancha 1",
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

func newTestUseCase(crt *domain.Court) (*UseCase, *fakeReservationRepo, *fakePublisher) {
	repo := &fakeReservationRepo{}
	publisher := &fakePublisher{}
	uc := New(
		repo,
		&fakeCourtRepo{courts: map[int64]*domain.Court{crt.ID: crt}},
		&fakeTxManager{},
		publisher,
		nopLogger{},
	)
	return uc, repo, publisher
}

func baseRequest() Request {
	return Request{
		CustomerID:      42,
		CourtID:         1,
		Date:            time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "18:00",
		DurationMinutes: 90,
		Now:             time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestExecute_CreatesPendingReservation(t *testing.T) {
	uc, repo, publisher := newTestUseCase(testCourt())

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Reservation.Status)
	assert.Equal(t, "19:30", resp.EndTime.String())
	assert.Equal(t, "105.00", resp.Cost.StringFixed(2)) // night 90min: 70 + 35
	assert.Len(t, repo.stored, 1)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, domain.EventReservationCreated, publisher.events[0].Type)
	assert.Equal(t, resp.Reservation.ID, publisher.events[0].ReservationID)
}

func TestExecute_ConflictNamesBlockingReservation(t *testing.T) {
	uc, _, _ := newTestUseCase(testCourt())

	first, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	// Overlapping window on the same day.
	req := baseRequest()
	req.StartTime = "19:00"
	req.DurationMinutes = 60

	_, err = uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.Reservation.ID, conflict.BlockingID)
	assert.Equal(t, "18:00", conflict.StartTime.String())
	assert.Equal(t, "19:30", conflict.EndTime.String())
}

func TestExecute_TouchingWindowsCoexist(t *testing.T) {
	uc, repo, _ := newTestUseCase(testCourt())

	_, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	req := baseRequest()
	req.StartTime = "19:30"
	req.DurationMinutes = 30

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, repo.stored, 2)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	crt := testCourt()
	uc, repo, _ := newTestUseCase(crt)

	first, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	repo.stored[0].Status = domain.StatusCancelled
	_ = first

	_, err = uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc, _, _ := newTestUseCase(testCourt())

	tests := []struct {
		name    string
		mod     func(r *Request)
		wantErr error
	}{
		{"misaligned start", func(r *Request) { r.StartTime = "18:15" }, ErrInvalidTimeSlot},
		{"duration not multiple of 30", func(r *Request) { r.DurationMinutes = 45 }, ErrInvalidTimeSlot},
		{"zero duration", func(r *Request) { r.DurationMinutes = 0 }, ErrInvalidTimeSlot},
		{"before opening", func(r *Request) { r.StartTime = "07:30"; r.DurationMinutes = 30 }, ErrInvalidTimeSlot},
		{"past closing", func(r *Request) { r.StartTime = "22:30"; r.DurationMinutes = 60 }, ErrInvalidTimeSlot},
		{"past date", func(r *Request) { r.Date = time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC) }, ErrInvalidDate},
		{"missing customer", func(r *Request) { r.CustomerID = 0 }, ErrInvalidInput},
		{"notes too long", func(r *Request) {
			long := make([]byte, domain.MaxNotesLength+1)
			for i := range long {
				long[i] = 'x'
			}
			r.Notes = ptr.Ptr(string(long))
		}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mod(&req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_SameDayBookingAllowed(t *testing.T) {
	uc, _, _ := newTestUseCase(testCourt())

	req := baseRequest()
	req.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	req.Now = time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC) // late same day

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_CourtProblems(t *testing.T) {
	inactive := testCourt()
	inactive.Active = false
	uc, _, _ := newTestUseCase(inactive)

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrCourtInactive)

	req := baseRequest()
	req.CourtID = 99
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_ConcurrentRequestsOneWinner(t *testing.T) {
	uc, repo, _ := newTestUseCase(testCourt())

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), baseRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotUnavailable):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won, "exactly one booking must win the window")
	assert.Equal(t, attempts-1, lost)
	assert.Len(t, repo.stored, 1)
}
