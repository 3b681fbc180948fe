package finalize_session_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	coachRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/coach"
	sessionBookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionbooking"
	sessionRequestRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/sessionrequest"
	"github.com/m04kA/SMC-SportsBookingService/pkg/mq"
)

const metricsKind = "session"

// UseCase use case для оформления бронирования тренировки по принятой заявке
type UseCase struct {
	requestRepo RequestRepository
	coachRepo   CoachRepository
	bookingRepo SessionBookingRepository
	artifacts   ArtifactService
	publisher   EventPublisher
	metrics     Metrics
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	coachRepo CoachRepository,
	bookingRepo SessionBookingRepository,
	artifacts ArtifactService,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo: requestRepo,
		coachRepo:   coachRepo,
		bookingRepo: bookingRepo,
		artifacts:   artifacts,
		publisher:   publisher,
		metrics:     metrics,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает снимок SessionBooking и переводит заявку в booked
//
// Предусловия: статус accepted, прикреплен чек, у тренера есть цена для типа тренировки.
// Код подтверждения выпускается после фиксации транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FinalizeSessionBooking: actor=%d, request=%d", req.ActorUserID, req.RequestID)

	// 1. Валидация входных данных
	if req.ActorUserID <= 0 || req.RequestID <= 0 {
		return nil, fmt.Errorf("%w: actor and request are required", ErrInvalidInput)
	}

	var result *domain.SessionBooking

	// 2. Снимок и смена статуса в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Заявка под блокировкой
		sessionReq, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, sessionRequestRepo.ErrRequestNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		coach, err := uc.coachRepo.GetByID(txCtx, sessionReq.CoachID)
		if err != nil && !errors.Is(err, coachRepo.ErrCoachNotFound) {
			return fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
		}

		// 2.2. Оформить может автор заявки или ее тренер
		isCoach := coach != nil && coach.UserID == req.ActorUserID
		if sessionReq.UserID != req.ActorUserID && !isCoach {
			return ErrForbidden
		}

		// 2.3. Предусловия в фиксированном порядке
		if sessionReq.Status != domain.RequestAccepted {
			return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrNotAccepted)
		}
		if !sessionReq.HasPaymentProof() {
			return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrMissingReceipt)
		}
		if coach == nil {
			return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrMissingPrice)
		}
		fee, ok := coach.FeeFor(sessionReq.Kind)
		if !ok {
			return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrMissingPrice)
		}

		// 2.4. Снимок данных тренера и цены на момент оформления
		created, err := uc.bookingRepo.Create(txCtx, &domain.SessionBooking{
			RequestID: sessionReq.ID,
			UserID:    sessionReq.UserID,
			CoachID:   coach.ID,
			CoachName: coach.Name,
			Sport:     sessionReq.Sport,
			Kind:      sessionReq.Kind,
			Fee:       fee,
			CourtID:   sessionReq.CourtID,
			Slots:     sessionReq.Slots,
		})
		if err != nil {
			if errors.Is(err, sessionBookingRepo.ErrAlreadyBooked) {
				return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrNotAccepted)
			}
			return fmt.Errorf("%w: failed to create session booking: %v", ErrInternal, err)
		}

		// 2.5. accepted -> booked
		err = uc.requestRepo.UpdateStatus(txCtx, sessionReq.ID, domain.RequestAccepted, domain.RequestBooked, nil)
		if err != nil {
			if errors.Is(err, sessionRequestRepo.ErrStatusChanged) {
				return fmt.Errorf("%w: %w", ErrPreconditionFailed, ErrNotAccepted)
			}
			return fmt.Errorf("%w: failed to update request status: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("FinalizeSessionBooking: request=%d: %v", req.RequestID, err)
		} else {
			uc.logger.Warn("FinalizeSessionBooking: request=%d rejected: %v", req.RequestID, err)
		}
		return nil, err
	}

	uc.metrics.IncBookingCreated(metricsKind)
	uc.logger.Info("FinalizeSessionBooking: successfully created session booking id=%d for request=%d", result.ID, req.RequestID)

	// 3. Вторая фаза: код подтверждения. Ошибка не отменяет бронирование
	artifact, err := uc.artifacts.AttachToSessionBooking(ctx, result.ID)
	if err != nil {
		uc.logger.Warn("FinalizeSessionBooking: booking id=%d saved without verification code: %v", result.ID, err)
	} else {
		result.VerificationCode = &artifact.Code
		result.VerificationURL = &artifact.URL
	}

	// 4. Публикуем событие
	event := bookingCreatedEvent{
		BookingID:           result.ID,
		RequestID:           result.RequestID,
		UserID:              result.UserID,
		CoachID:             result.CoachID,
		Kind:                string(result.Kind),
		Fee:                 result.Fee,
		VerificationPending: result.VerificationPending(),
	}
	if err := uc.publisher.PublishJSON(ctx, mq.EventSessionBookingCreated, event); err != nil {
		uc.logger.Warn("FinalizeSessionBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:                  result.ID,
		RequestID:           result.RequestID,
		UserID:              result.UserID,
		CoachID:             result.CoachID,
		CoachName:           result.CoachName,
		Sport:               result.Sport,
		Kind:                result.Kind,
		Fee:                 result.Fee,
		CourtID:             result.CourtID,
		Slots:               result.Slots,
		VerificationCode:    result.VerificationCode,
		VerificationURL:     result.VerificationURL,
		VerificationPending: result.VerificationPending(),
		CreatedAt:           result.CreatedAt,
	}, nil
}
