package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/booking"
	coachRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/coach"
	sessionBookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionbooking"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/artifacts"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований и повторного выпуска кодов подтверждения
type Service struct {
	facilityRepo FacilityBookingRepository
	sessionRepo  SessionBookingRepository
	coachRepo    CoachRepository
	artifacts    ArtifactService
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	facilityRepo FacilityBookingRepository,
	sessionRepo SessionBookingRepository,
	coachRepo CoachRepository,
	artifacts ArtifactService,
	logger Logger,
) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		sessionRepo:  sessionRepo,
		coachRepo:    coachRepo,
		artifacts:    artifacts,
		logger:       logger,
	}
}

// GetFacilityBooking получает бронирование корта по ID
// Доступно владельцу, администратору и охране
func (s *Service) GetFacilityBooking(ctx context.Context, id, userID int64, role domain.Role) (*models.FacilityBookingResponse, error) {
	s.logger.Info("GetFacilityBooking: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getFacilityBooking(ctx, "GetFacilityBooking", id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID && role != domain.RoleAdmin && role != domain.RoleGuard {
		s.logger.Warn("GetFacilityBooking: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainFacilityBooking(booking), nil
}

// GetUserBookings получает бронирования кортов пользователя (новые первыми)
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.FacilityBookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	bookings, err := s.facilityRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: found %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainFacilityBookingList(bookings), nil
}

// RetryFacilityVerification повторно выпускает код подтверждения для бронирования корта
// Бронирование с уже выпущенным кодом возвращается без изменений
func (s *Service) RetryFacilityVerification(ctx context.Context, id, userID int64, role domain.Role) (*models.FacilityBookingResponse, error) {
	s.logger.Info("RetryFacilityVerification: booking id=%d, user=%d", id, userID)

	booking, err := s.getFacilityBooking(ctx, "RetryFacilityVerification", id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID && role != domain.RoleAdmin {
		s.logger.Warn("RetryFacilityVerification: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	if !booking.VerificationPending() {
		return models.FromDomainFacilityBooking(booking), nil
	}

	if _, err := s.artifacts.AttachToFacilityBooking(ctx, id); err != nil {
		return nil, s.mapArtifactError("RetryFacilityVerification", id, err)
	}

	booking, err = s.getFacilityBooking(ctx, "RetryFacilityVerification", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("RetryFacilityVerification: verification code attached to booking id=%d", id)
	return models.FromDomainFacilityBooking(booking), nil
}

// GetSessionBooking получает бронирование тренировки по ID
// Доступно клиенту, тренеру, администратору и охране
func (s *Service) GetSessionBooking(ctx context.Context, id, userID int64, role domain.Role) (*models.SessionBookingResponse, error) {
	s.logger.Info("GetSessionBooking: fetching session booking id=%d for user=%d", id, userID)

	booking, err := s.getSessionBooking(ctx, "GetSessionBooking", id)
	if err != nil {
		return nil, err
	}

	if role != domain.RoleAdmin && role != domain.RoleGuard {
		if err := s.checkSessionAccess(ctx, booking, userID); err != nil {
			s.logger.Warn("GetSessionBooking: access denied for user=%d to session booking id=%d", userID, id)
			return nil, err
		}
	}

	return models.FromDomainSessionBooking(booking), nil
}

// RetrySessionVerification повторно выпускает код подтверждения для бронирования тренировки
func (s *Service) RetrySessionVerification(ctx context.Context, id, userID int64, role domain.Role) (*models.SessionBookingResponse, error) {
	s.logger.Info("RetrySessionVerification: session booking id=%d, user=%d", id, userID)

	booking, err := s.getSessionBooking(ctx, "RetrySessionVerification", id)
	if err != nil {
		return nil, err
	}

	if role != domain.RoleAdmin {
		if err := s.checkSessionAccess(ctx, booking, userID); err != nil {
			s.logger.Warn("RetrySessionVerification: access denied for user=%d to session booking id=%d", userID, id)
			return nil, err
		}
	}

	if !booking.VerificationPending() {
		return models.FromDomainSessionBooking(booking), nil
	}

	if _, err := s.artifacts.AttachToSessionBooking(ctx, id); err != nil {
		return nil, s.mapArtifactError("RetrySessionVerification", id, err)
	}

	booking, err = s.getSessionBooking(ctx, "RetrySessionVerification", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("RetrySessionVerification: verification code attached to session booking id=%d", id)
	return models.FromDomainSessionBooking(booking), nil
}

func (s *Service) getFacilityBooking(ctx context.Context, op string, id int64) (*domain.FacilityBooking, error) {
	booking, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) getSessionBooking(ctx context.Context, op string, id int64) (*domain.SessionBooking, error) {
	booking, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionBookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: session booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for session booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkSessionAccess клиент или пользователь, которому принадлежит профиль тренера
func (s *Service) checkSessionAccess(ctx context.Context, booking *domain.SessionBooking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	coach, err := s.coachRepo.GetByID(ctx, booking.CoachID)
	if err != nil {
		if errors.Is(err, coachRepo.ErrCoachNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: checkSessionAccess - repository error: %v", ErrInternal, err)
	}

	if coach.UserID != userID {
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) mapArtifactError(op string, id int64, err error) error {
	if errors.Is(err, artifacts.ErrBookingNotFound) {
		return ErrBookingNotFound
	}
	s.logger.Warn("%s: booking id=%d still has no verification code: %v", op, id, err)
	return fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
}
