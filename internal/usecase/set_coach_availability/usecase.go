package set_coach_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	coachRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/coach"
)

// UseCase use case для изменения окна доступности тренера
type UseCase struct {
	coachRepo    CoachRepository
	catalog      *domain.SlotCatalog
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	coachRepo CoachRepository,
	catalog *domain.SlotCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		coachRepo:    coachRepo,
		catalog:      catalog,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет окно [сегодня, сегодня+7] и применяет набор пар
// Уже созданные заявки не перепроверяются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetCoachAvailability: actor=%d, coach=%d, mode=%s, slots=%d",
		req.ActorUserID, req.CoachID, req.Mode, len(req.Slots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetCoachAvailability: validation failed: %v", err)
		return nil, err
	}

	slots := domain.NormalizeSessionSlots(req.Slots)

	// 2. Окно проверяется относительно текущей даты
	if err := validateSlots(uc.catalog, slots, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SetCoachAvailability: coach=%d rejected: %v", req.CoachID, err)
		return nil, err
	}

	var availability []domain.SessionSlot

	// 3. Проверка владельца и запись в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		coach, err := uc.coachRepo.GetByID(txCtx, req.CoachID)
		if err != nil {
			if errors.Is(err, coachRepo.ErrCoachNotFound) {
				return ErrCoachNotFound
			}
			return fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
		}

		if coach.UserID != req.ActorUserID {
			return ErrForbidden
		}

		if req.Mode == ModeAppend {
			err = uc.coachRepo.AddAvailability(txCtx, req.CoachID, slots)
		} else {
			err = uc.coachRepo.ReplaceAvailability(txCtx, req.CoachID, slots)
		}
		if err != nil {
			return fmt.Errorf("%w: failed to save availability: %v", ErrInternal, err)
		}

		availability, err = uc.coachRepo.GetAvailability(txCtx, req.CoachID)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrCoachNotFound), errors.Is(err, ErrForbidden):
			uc.logger.Warn("SetCoachAvailability: coach=%d actor=%d: %v", req.CoachID, req.ActorUserID, err)
		default:
			uc.logger.Error("SetCoachAvailability: coach=%d: %v", req.CoachID, err)
		}
		return nil, err
	}

	uc.logger.Info("SetCoachAvailability: coach=%d now has %d open slots", req.CoachID, len(availability))

	return &Response{
		CoachID:      req.CoachID,
		Availability: availability,
	}, nil
}
