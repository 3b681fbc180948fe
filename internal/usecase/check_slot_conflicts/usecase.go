package check_slot_conflicts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/facility"
)

// UseCase проверка пересечения запрошенных слотов с уже забронированными
// Только чтение: результат может устареть к моменту бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	catalog      *domain.SlotCatalog
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	catalog *domain.SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		catalog:      catalog,
		logger:       logger,
	}
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.CourtID <= 0 || domain.NormalizeSport(req.Sport) == "" || req.Date.IsZero() {
		uc.logger.Warn("CheckSlotConflicts: invalid request court=%d sport=%q", req.CourtID, req.Sport)
		return nil, fmt.Errorf("%w: court, sport and date are required", ErrInvalidInput)
	}

	sport := domain.NormalizeSport(req.Sport)
	date := domain.DateOnly(req.Date)
	slots := domain.NormalizeSlots(req.Slots)

	if unknown := uc.catalog.UnknownSlots(slots); len(unknown) > 0 {
		uc.logger.Warn("CheckSlotConflicts: unknown slots %v", unknown)
		return nil, &UnknownSlotsError{Slots: unknown}
	}

	// Пустой набор ни с чем не пересекается
	if len(slots) == 0 {
		return &Response{OK: true, Conflicts: []string{}}, nil
	}

	// 2. Проверяем корт
	court, err := uc.facilityRepo.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrCourtNotFound) {
			uc.logger.Warn("CheckSlotConflicts: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CheckSlotConflicts: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.OffersSport(sport) {
		return nil, ErrSportNotOffered
	}

	// 3. Пересекаем с занятыми слотами
	reserved, err := uc.bookingRepo.GetReservedSlots(ctx, req.CourtID, date, sport)
	if err != nil {
		uc.logger.Error("CheckSlotConflicts: failed to get reserved slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get reserved slots: %v", ErrInternal, err)
	}

	conflicts := domain.FindConflicts(slots, reserved)

	uc.logger.Info("CheckSlotConflicts: court=%d, sport=%s, date=%s, requested=%d, conflicts=%v",
		req.CourtID, sport, date.Format(domain.DateFormat), len(slots), conflicts)

	return &Response{
		OK:        len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
