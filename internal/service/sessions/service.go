package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	coachRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/coach"
	requestRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionrequest"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/sessions/models"
)

// Service сервис чтения заявок на тренировку
type Service struct {
	requestRepo RequestRepository
	coachRepo   CoachRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(requestRepo RequestRepository, coachRepo CoachRepository, logger Logger) *Service {
	return &Service{
		requestRepo: requestRepo,
		coachRepo:   coachRepo,
		logger:      logger,
	}
}

// GetRequest получает заявку по ID
// Доступно автору заявки, тренеру и администратору
func (s *Service) GetRequest(ctx context.Context, id, userID int64, role domain.Role) (*models.SessionRequestResponse, error) {
	s.logger.Info("GetRequest: fetching request id=%d for user=%d", id, userID)

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetRequest: request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetRequest: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRequest - repository error: %v", ErrInternal, err)
	}

	if request.UserID != userID && role != domain.RoleAdmin {
		if err := s.checkCoachOwner(ctx, request.CoachID, userID); err != nil {
			s.logger.Warn("GetRequest: access denied for user=%d to request id=%d", userID, id)
			return nil, err
		}
	}

	return models.FromDomainRequest(request), nil
}

// ListByCoach получает заявки тренера, опционально по статусу (новые первыми)
// Доступно самому тренеру и администратору
func (s *Service) ListByCoach(ctx context.Context, userID int64, role domain.Role, req *models.ListRequestsRequest) (*models.SessionRequestListResponse, error) {
	s.logger.Info("ListByCoach: coach=%d, status=%v, user=%d", req.CoachID, req.Status, userID)

	filter := domain.SessionRequestFilter{CoachID: &req.CoachID}
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListByCoach: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	if role != domain.RoleAdmin {
		if err := s.checkCoachOwner(ctx, req.CoachID, userID); err != nil {
			s.logger.Warn("ListByCoach: access denied for user=%d to coach id=%d", userID, req.CoachID)
			return nil, err
		}
	}

	requests, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListByCoach: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: ListByCoach - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCoach: found %d requests for coach=%d", len(requests), req.CoachID)
	return models.FromDomainRequestList(requests), nil
}

// ListByUser получает заявки пользователя (новые первыми)
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.SessionRequestListResponse, error) {
	requests, err := s.requestRepo.List(ctx, domain.SessionRequestFilter{UserID: &userID})
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRequestList(requests), nil
}

func (s *Service) checkCoachOwner(ctx context.Context, coachID, userID int64) error {
	coach, err := s.coachRepo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, coachRepo.ErrCoachNotFound) {
			return ErrCoachNotFound
		}
		return fmt.Errorf("%w: checkCoachOwner - repository error: %v", ErrInternal, err)
	}

	if coach.UserID != userID {
		return ErrAccessDenied
	}
	return nil
}
