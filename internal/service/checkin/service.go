package checkin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/booking"
	sessionBookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionbooking"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/checkin/models"
)

// Service проверка кода подтверждения на входе
// Бронирования только читаются
type Service struct {
	facilityRepo FacilityBookingRepository
	sessionRepo  SessionBookingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(facilityRepo FacilityBookingRepository, sessionRepo SessionBookingRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		sessionRepo:  sessionRepo,
		logger:       logger,
	}
}

// Verify находит бронирование по коду: сначала среди кортов, затем среди тренировок
func (s *Service) Verify(ctx context.Context, role domain.Role, code string) (*models.CheckinResponse, error) {
	code = strings.TrimSpace(code)
	s.logger.Info("Verify: role=%s, code=%q", role, code)

	if role != domain.RoleGuard && role != domain.RoleAdmin {
		s.logger.Warn("Verify: role=%s is not allowed to check codes", role)
		return nil, ErrAccessDenied
	}
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	// 1. Бронирование корта
	facilityBooking, err := s.facilityRepo.GetByVerificationCode(ctx, code)
	switch {
	case err == nil:
		s.logger.Info("Verify: code belongs to facility booking id=%d", facilityBooking.ID)
		return models.FromFacilityBooking(facilityBooking), nil
	case !errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Error("Verify: facility repository error: %v", err)
		return nil, fmt.Errorf("%w: Verify - repository error: %v", ErrInternal, err)
	}

	// 2. Бронирование тренировки
	sessionBooking, err := s.sessionRepo.GetByVerificationCode(ctx, code)
	switch {
	case err == nil:
		s.logger.Info("Verify: code belongs to session booking id=%d", sessionBooking.ID)
		return models.FromSessionBooking(sessionBooking), nil
	case !errors.Is(err, sessionBookingRepo.ErrBookingNotFound):
		s.logger.Error("Verify: session repository error: %v", err)
		return nil, fmt.Errorf("%w: Verify - repository error: %v", ErrInternal, err)
	}

	s.logger.Warn("Verify: code %q not found", code)
	return nil, ErrCodeNotFound
}
