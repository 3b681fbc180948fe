package create_session_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	coachRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/coach"
	"github.com/m04kA/SMC-SportsBookingService/pkg/mq"
)

// UseCase use case для создания заявки на тренировку
type UseCase struct {
	coachRepo   CoachRepository
	requestRepo RequestRepository
	publisher   EventPublisher
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	coachRepo CoachRepository,
	requestRepo RequestRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		coachRepo:   coachRepo,
		requestRepo: requestRepo,
		publisher:   publisher,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает заявку в статусе pending, если все пары есть в окне тренера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSessionRequest: user=%d, coach=%d, kind=%s, slots=%d",
		req.UserID, req.CoachID, req.Kind, len(req.Slots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSessionRequest: validation failed: %v", err)
		return nil, err
	}

	slots := domain.NormalizeSessionSlots(req.Slots)

	var created *domain.SessionRequest

	// 2. Проверка окна и создание заявки в транзакции (профиль читается FOR UPDATE)
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		coach, err := uc.coachRepo.GetByID(txCtx, req.CoachID)
		if err != nil {
			if errors.Is(err, coachRepo.ErrCoachNotFound) {
				return ErrCoachNotFound
			}
			return fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
		}

		sport := domain.NormalizeSport(req.Sport)
		if sport == "" {
			sport = coach.Sport
		} else if sport != domain.NormalizeSport(coach.Sport) {
			return ErrSportMismatch
		}

		// 2.1. Точное совпадение каждой пары с окном
		if missing := coach.MissingFromAvailability(slots); len(missing) > 0 {
			return &UnavailableSlotsError{Slots: missing}
		}

		// 2.2. Создаем заявку со снимком имени тренера
		created, err = uc.requestRepo.Create(txCtx, &domain.SessionRequest{
			UserID:    req.UserID,
			CoachID:   coach.ID,
			Sport:     sport,
			Kind:      req.Kind,
			Slots:     slots,
			Status:    domain.RequestPending,
			CoachName: coach.Name,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateSessionRequest: user=%d, coach=%d: %v", req.UserID, req.CoachID, err)
		} else {
			uc.logger.Warn("CreateSessionRequest: user=%d, coach=%d rejected: %v", req.UserID, req.CoachID, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateSessionRequest: successfully created request id=%d", created.ID)

	// 3. Публикуем событие
	event := requestCreatedEvent{
		RequestID: created.ID,
		UserID:    created.UserID,
		CoachID:   created.CoachID,
		Sport:     created.Sport,
		Kind:      string(created.Kind),
		Slots:     len(created.Slots),
	}
	if err := uc.publisher.PublishJSON(ctx, mq.EventSessionRequestCreated, event); err != nil {
		uc.logger.Warn("CreateSessionRequest: failed to publish event for request id=%d: %v", created.ID, err)
	}

	return &Response{
		ID:        created.ID,
		UserID:    created.UserID,
		CoachID:   created.CoachID,
		CoachName: created.CoachName,
		Sport:     created.Sport,
		Kind:      created.Kind,
		Slots:     created.Slots,
		Status:    created.Status,
		CreatedAt: created.CreatedAt,
	}, nil
}
