package respond_session_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	coachRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/coach"
	facilityRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/facility"
	sessionRequestRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionrequest"
	"github.com/m04kA/SMC-SportsBookingService/pkg/mq"
)

// UseCase use case для ответа тренера на заявку
type UseCase struct {
	requestRepo  RequestRepository
	coachRepo    CoachRepository
	facilityRepo FacilityRepository
	publisher    EventPublisher
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	coachRepo CoachRepository,
	facilityRepo FacilityRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		coachRepo:    coachRepo,
		facilityRepo: facilityRepo,
		publisher:    publisher,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute переводит заявку pending -> accepted | rejected
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RespondSessionRequest: actor=%d, request=%d, decision=%s", req.ActorUserID, req.RequestID, req.Decision)

	// 1. Валидация входных данных
	if req.ActorUserID <= 0 || req.RequestID <= 0 {
		return nil, fmt.Errorf("%w: actor and request are required", ErrInvalidInput)
	}
	if !req.Decision.IsValid() {
		return nil, fmt.Errorf("%w: unknown decision %q", ErrInvalidInput, req.Decision)
	}

	// Отклоненная заявка не хранит корт
	courtID := req.CourtID
	if req.Decision == domain.DecisionReject {
		courtID = nil
	}

	var result *domain.SessionRequest

	// 2. Проверки и смена статуса в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Заявка под блокировкой
		sessionReq, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, sessionRequestRepo.ErrRequestNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		// 2.2. Отвечать может только тренер заявки
		coach, err := uc.coachRepo.GetByID(txCtx, sessionReq.CoachID)
		if err != nil {
			if errors.Is(err, coachRepo.ErrCoachNotFound) {
				return ErrForbidden
			}
			return fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
		}
		if coach.UserID != req.ActorUserID {
			return ErrForbidden
		}

		// 2.3. Только из pending
		if !sessionReq.CanRespond() {
			return fmt.Errorf("%w: current status %s", ErrInvalidState, sessionReq.Status)
		}

		// 2.4. Назначаемый корт должен существовать
		if courtID != nil {
			if _, err := uc.facilityRepo.GetCourt(txCtx, *courtID); err != nil {
				if errors.Is(err, facilityRepo.ErrCourtNotFound) {
					return ErrCourtNotFound
				}
				return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
			}
		}

		// 2.5. Условное обновление статуса
		next := req.Decision.Status()
		if err := uc.requestRepo.UpdateStatus(txCtx, sessionReq.ID, domain.RequestPending, next, courtID); err != nil {
			if errors.Is(err, sessionRequestRepo.ErrStatusChanged) {
				return fmt.Errorf("%w: status changed concurrently", ErrInvalidState)
			}
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		sessionReq.Status = next
		if courtID != nil {
			sessionReq.CourtID = courtID
		}
		result = sessionReq
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("RespondSessionRequest: request=%d: %v", req.RequestID, err)
		} else {
			uc.logger.Warn("RespondSessionRequest: request=%d rejected: %v", req.RequestID, err)
		}
		return nil, err
	}

	uc.logger.Info("RespondSessionRequest: request=%d is now %s", result.ID, result.Status)

	// 3. Публикуем событие
	event := requestRespondedEvent{
		RequestID: result.ID,
		UserID:    result.UserID,
		CoachID:   result.CoachID,
		Status:    string(result.Status),
		CourtID:   result.CourtID,
	}
	if err := uc.publisher.PublishJSON(ctx, mq.EventSessionRequestResponded, event); err != nil {
		uc.logger.Warn("RespondSessionRequest: failed to publish event for request id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		CoachID:         result.CoachID,
		CoachName:       result.CoachName,
		Sport:           result.Sport,
		Kind:            result.Kind,
		Slots:           result.Slots,
		Status:          result.Status,
		CourtID:         result.CourtID,
		PaymentProofURL: result.PaymentProofURL,
		CreatedAt:       result.CreatedAt,
	}, nil
}
