package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/facility"
)

// UseCase use case для получения свободных слотов корта
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

// Execute возвращает каталог слотов за вычетом занятых на корте в дату для вида спорта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: court=%d, sport=%s, date=%s",
		req.CourtID, req.Sport, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	sport := domain.NormalizeSport(req.Sport)
	date := domain.DateOnly(req.Date)

	// 2. Проверяем корт и вид спорта
	court, err := uc.facilityRepo.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.OffersSport(sport) {
		uc.logger.Warn("GetAvailableSlots: sport %s is not offered at facility id=%d", sport, court.FacilityID)
		return nil, ErrSportNotOffered
	}

	// 3. Получаем занятые слоты
	reserved, err := uc.bookingRepo.GetReservedSlots(ctx, req.CourtID, date, sport)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reserved slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get reserved slots: %v", ErrInternal, err)
	}

	// 4. Каталог минус занятые
	available := uc.catalog.Available(reserved)

	uc.logger.Info("GetAvailableSlots: court=%d, date=%s: %d of %d slots available",
		req.CourtID, date.Format(domain.DateFormat), len(available), uc.catalog.Len())

	return &Response{
		CourtID:  req.CourtID,
		Sport:    sport,
		Date:     date,
		Slots:    available,
		Reserved: uc.catalog.Sort(domain.NormalizeSlots(reserved)),
	}, nil
}
