package courts

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	courtRepo "github.com/rmarchan/ReservaCanchasService/internal/infra/storage/court"
	"github.com/rmarchan/ReservaCanchasService/internal/service/courts/models"
)

type fakeCourtRepo struct {
	stored map[int64]*domain.Court
	nextID int64
}

func newFakeCourtRepo(courts ...*domain.Court) *fakeCourtRepo {
	repo := &fakeCourtRepo{stored: make(map[int64]*domain.Court), nextID: 1}
	for _, c := range courts {
		repo.stored[c.ID] = c
		if c.ID >= repo.nextID {
			repo.nextID = c.ID + 1
		}
	}
	return repo
}

func (f *fakeCourtRepo) Create(_ context.Context, court *domain.Court) (*domain.Court, error) {
	created := *court
	created.ID = f.nextID
	f.nextID++
	f.stored[created.ID] = &created
	return &created, nil
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	c, ok := f.stored[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", courtRepo.ErrCourtNotFound, id)
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCourtRepo) List(_ context.Context, activeOnly bool) ([]*domain.Court, error) {
	var out []*domain.Court
	for _, c := range f.stored {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourtRepo) Update(_ context.Context, court *domain.Court) error {
	if _, ok := f.stored[court.ID]; !ok {
		return courtRepo.ErrCourtNotFound
	}
	copied := *court
	f.stored[court.ID] = &copied
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateCourtRequest {
	return &models.CreateCourtRequest{
		UserID:       7,
		Role:         domain.RoleStaff,
		Name:         "Cancha Central",
		OpenTime:     "08:00",
		CloseTime:    "22:00",
		NightCutoff:  "18:00",
		PriceDay30:   decimal.NewFromInt(25),
		PriceDay60:   decimal.NewFromInt(50),
		PriceNight30: decimal.NewFromInt(35),
		PriceNight60: decimal.NewFromInt(70),
		Capacity:     10,
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeCourtRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "Cancha Central", resp.Name)
	assert.Equal(t, "25.00", resp.PriceDay30)
	assert.True(t, resp.Active)
	assert.Equal(t, 10, resp.Capacity)
}

func TestCreate_StaffOnly(t *testing.T) {
	svc := NewService(newFakeCourtRepo(), nopLogger{})

	req := validCreateRequest()
	req.Role = domain.RoleCustomer
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_DefaultCapacity(t *testing.T) {
	svc := NewService(newFakeCourtRepo(), nopLogger{})

	req := validCreateRequest()
	req.Capacity = 0
	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Capacity)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CreateCourtRequest)
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(r *models.CreateCourtRequest) { r.Name = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed open time",
			mutate:  func(r *models.CreateCourtRequest) { r.OpenTime = "8am" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "close before open",
			mutate:  func(r *models.CreateCourtRequest) { r.OpenTime, r.CloseTime = "22:00", "08:00" },
			wantErr: ErrInvalidHours,
		},
		{
			name:    "open equals close",
			mutate:  func(r *models.CreateCourtRequest) { r.OpenTime, r.CloseTime = "10:00", "10:00" },
			wantErr: ErrInvalidHours,
		},
		{
			name:    "negative price",
			mutate:  func(r *models.CreateCourtRequest) { r.PriceNight60 = decimal.NewFromInt(-1) },
			wantErr: ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeCourtRepo(), nopLogger{})
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestList_RoleFiltering(t *testing.T) {
	active := &domain.Court{ID: 1, Name: "Activa", OpenTime: "08:00", CloseTime: "22:00", NightCutoff: "18:00", Active: true}
	inactive := &domain.Court{ID: 2, Name: "Cerrada", OpenTime: "08:00", CloseTime: "22:00", NightCutoff: "18:00", Active: false}
	svc := NewService(newFakeCourtRepo(active, inactive), nopLogger{})

	resp, err := svc.List(context.Background(), domain.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Activa", resp.Courts[0].Name)

	resp, err = svc.List(context.Background(), domain.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeCourtRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUpdate_Deactivates(t *testing.T) {
	court := &domain.Court{
		ID: 1, Name: "Cancha Norte",
		OpenTime: "08:00", CloseTime: "22:00", NightCutoff: "18:00",
		PriceDay30: decimal.NewFromInt(25), PriceDay60: decimal.NewFromInt(50),
		PriceNight30: decimal.NewFromInt(35), PriceNight60: decimal.NewFromInt(70),
		Capacity: 10, Active: true,
	}
	repo := newFakeCourtRepo(court)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateCourtRequest{
		UserID: 7, Role: domain.RoleAdmin,
		Name:     "Cancha Norte",
		OpenTime: "09:00", CloseTime: "21:00", NightCutoff: "17:00",
		PriceDay30: decimal.NewFromInt(30), PriceDay60: decimal.NewFromInt(55),
		PriceNight30: decimal.NewFromInt(40), PriceNight60: decimal.NewFromInt(75),
		Active: false,
	})
	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Equal(t, "09:00", resp.OpenTime)
	assert.Equal(t, "30.00", resp.PriceDay30)
	// Capacity 0 in the request keeps the stored value.
	assert.Equal(t, 10, resp.Capacity)

	// The row survives deactivation.
	stored, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestUpdate_StaffOnly(t *testing.T) {
	svc := NewService(newFakeCourtRepo(&domain.Court{ID: 1, Name: "Cancha", OpenTime: "08:00", CloseTime: "22:00", NightCutoff: "18:00", Active: true}), nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateCourtRequest{UserID: 42, Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newFakeCourtRepo(), nopLogger{})

	req := &models.UpdateCourtRequest{
		UserID: 7, Role: domain.RoleStaff,
		Name:     "Cancha",
		OpenTime: "08:00", CloseTime: "22:00", NightCutoff: "18:00",
	}
	_, err := svc.Update(context.Background(), 99, req)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}
