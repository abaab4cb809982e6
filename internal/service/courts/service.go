package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	courtRepo "github.com/rmarchan/ReservaCanchasService/internal/infra/storage/court"
	"github.com/rmarchan/ReservaCanchasService/internal/service/courts/models"
)

// Service manages the court registry. Reads are public; every mutation is
// staff-only. Courts referenced by reservations are never deleted, only
// deactivated.
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService creates the courts service.
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Create registers a new cancha.
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: court %q by user=%d", req.Name, req.UserID)

	if !domain.IsStaffRole(req.Role) {
		s.logger.Warn("Create: user=%d is not staff", req.UserID)
		return nil, ErrAccessDenied
	}

	court := &domain.Court{
		Name:         req.Name,
		OpenTime:     req.OpenTime,
		CloseTime:    req.CloseTime,
		NightCutoff:  req.NightCutoff,
		PriceDay30:   req.PriceDay30,
		PriceDay60:   req.PriceDay60,
		PriceNight30: req.PriceNight30,
		PriceNight60: req.PriceNight60,
		Capacity:     req.Capacity,
		Active:       true,
	}
	if court.Capacity <= 0 {
		court.Capacity = 1
	}

	if err := validateCourt(court); err != nil {
		s.logger.Warn("Create: validation failed for court %q: %v", req.Name, err)
		return nil, err
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error for court %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: court id=%d created", created.ID)
	return models.FromDomainCourt(created), nil
}

// GetByID fetches a cancha.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetByID: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourt(court), nil
}

// List returns canchas; staff also see deactivated ones.
func (s *Service) List(ctx context.Context, role string) (*models.CourtListResponse, error) {
	activeOnly := !domain.IsStaffRole(role)

	courts, err := s.courtRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourtList(courts), nil
}

// Update edits a cancha, including soft-deactivation via Active.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Update: court id=%d by user=%d", id, req.UserID)

	if !domain.IsStaffRole(req.Role) {
		s.logger.Warn("Update: user=%d is not staff", req.UserID)
		return nil, ErrAccessDenied
	}

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Update: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	court.Name = req.Name
	court.OpenTime = req.OpenTime
	court.CloseTime = req.CloseTime
	court.NightCutoff = req.NightCutoff
	court.PriceDay30 = req.PriceDay30
	court.PriceDay60 = req.PriceDay60
	court.PriceNight30 = req.PriceNight30
	court.PriceNight60 = req.PriceNight60
	court.Active = req.Active
	if req.Capacity > 0 {
		court.Capacity = req.Capacity
	}

	if err := validateCourt(court); err != nil {
		s.logger.Warn("Update: validation failed for court id=%d: %v", id, err)
		return nil, err
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: court id=%d updated (activa=%t)", id, court.Active)
	return models.FromDomainCourt(court), nil
}

func validateCourt(court *domain.Court) error {
	if court.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	for _, t := range []struct {
		name  string
		value interface{ Validate() error }
	}{
		{"hora_inicio", court.OpenTime},
		{"hora_fin", court.CloseTime},
		{"corte_nocturno", court.NightCutoff},
	} {
		if err := t.value.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidInput, t.name, err)
		}
	}
	if !court.OpenTime.IsBefore(court.CloseTime) {
		return ErrInvalidHours
	}
	for _, p := range []interface{ IsNegative() bool }{
		court.PriceDay30, court.PriceDay60, court.PriceNight30, court.PriceNight60,
	} {
		if p.IsNegative() {
			return ErrNegativePrice
		}
	}
	return nil
}
