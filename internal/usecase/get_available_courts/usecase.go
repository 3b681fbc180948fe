package get_available_courts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// UseCase поиск кортов, свободных в слот на дату для вида спорта
// Используется тренером при принятии заявки для выбора корта
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

// Execute возвращает корты всех объектов с видом спорта, где слот не занят
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableCourts: sport=%s, date=%s, slot=%s",
		req.Sport, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	sport := domain.NormalizeSport(req.Sport)
	if sport == "" || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: sport and date are required", ErrInvalidInput)
	}
	if !uc.catalog.Contains(req.Slot) {
		uc.logger.Warn("GetAvailableCourts: unknown slot %q", req.Slot)
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlot, req.Slot)
	}

	date := domain.DateOnly(req.Date)

	// 2. Все корты с видом спорта
	courts, err := uc.facilityRepo.ListCourtsBySport(ctx, sport)
	if err != nil {
		uc.logger.Error("GetAvailableCourts: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	// 3. Корты, где слот уже занят
	busy, err := uc.bookingRepo.GetCourtsWithReservedSlot(ctx, date, sport, req.Slot)
	if err != nil {
		uc.logger.Error("GetAvailableCourts: failed to get reserved courts: %v", err)
		return nil, fmt.Errorf("%w: failed to get reserved courts: %v", ErrInternal, err)
	}

	busySet := make(map[int64]struct{}, len(busy))
	for _, id := range busy {
		busySet[id] = struct{}{}
	}

	// 4. Разность
	available := make([]Court, 0, len(courts))
	for _, c := range courts {
		if _, taken := busySet[c.ID]; taken {
			continue
		}
		available = append(available, Court{
			CourtID:      c.ID,
			Number:       c.Number,
			Name:         c.Name,
			FacilityID:   c.FacilityID,
			FacilityName: c.FacilityName,
			PricePerSlot: c.PricePerSlot,
		})
	}

	uc.logger.Info("GetAvailableCourts: %d of %d courts available", len(available), len(courts))

	return &Response{
		Sport:  sport,
		Date:   date,
		Slot:   req.Slot,
		Courts: available,
	}, nil
}
