package create_facility_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-SportsBookingService/internal/infra/storage/reperrors"
	"github.com/m04kA/SMC-SportsBookingService/pkg/mq"
)

const (
	defaultAttempts = 3
	metricsKind     = "facility"
)

// UseCase use case для бронирования корта
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	catalog      *domain.SlotCatalog
	artifacts    ArtifactService
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	opts         Options
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	catalog *domain.SlotCatalog,
	artifacts ArtifactService,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	opts Options,
	logger Logger,
) *UseCase {
	// retry-go трактует 0 попыток как бесконечный повтор
	if opts.Attempts == 0 {
		opts.Attempts = defaultAttempts
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		catalog:      catalog,
		artifacts:    artifacts,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		opts:         opts,
		logger:       logger,
	}
}

// Execute выполняет use case бронирования корта
//
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции.
// Код подтверждения выпускается после фиксации бронирования (вторая фаза).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateFacilityBooking: user=%d, court=%d, sport=%s, date=%s, slots=%v",
		req.UserID, req.CourtID, req.Sport, req.Date.Format(domain.DateFormat), req.Slots)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateFacilityBooking: validation failed: %v", err)
		return nil, err
	}

	sport := domain.NormalizeSport(req.Sport)
	date := domain.DateOnly(req.Date)
	slots := domain.NormalizeSlots(req.Slots)

	// 2. Слоты должны быть из каталога
	if unknown := uc.catalog.UnknownSlots(slots); len(unknown) > 0 {
		uc.logger.Warn("CreateFacilityBooking: unknown slots %v", unknown)
		return nil, &UnknownSlotsError{Slots: unknown}
	}

	// 3. Дата не раньше сегодняшней
	if domain.IsDateInPast(date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateFacilityBooking: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 4. Получаем корт вместе с объектом
	court, err := uc.facilityRepo.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateFacilityBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateFacilityBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 5. Вид спорта должен быть доступен на объекте
	if !court.OffersSport(sport) {
		uc.logger.Warn("CreateFacilityBooking: sport %s is not offered at facility id=%d", sport, court.FacilityID)
		return nil, ErrSportNotOffered
	}

	booking := &domain.FacilityBooking{
		UserID:          req.UserID,
		CourtID:         req.CourtID,
		Sport:           sport,
		BookingDate:     date,
		Slots:           slots,
		UnitPrice:       court.PricePerSlot,
		TotalPrice:      domain.CalculateTotal(court.PricePerSlot, len(slots)),
		PaymentProofURL: req.PaymentProofURL,
	}

	// 6. Атомарная проверка и вставка, повторяется при конфликте сериализации
	var result *domain.FacilityBooking
	err = retry.Do(
		func() error {
			created, err := uc.reserve(ctx, booking)
			if err != nil {
				return err
			}
			result = created
			return nil
		},
		retry.Attempts(uc.opts.Attempts),
		retry.Delay(uc.opts.Delay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return reperrors.IsRetryableError(err) || errors.Is(err, bookingRepo.ErrSlotAlreadyReserved)
		}),
	)
	if err != nil {
		return nil, uc.mapReserveError(err, booking)
	}

	uc.metrics.IncBookingCreated(metricsKind)
	uc.logger.Info("CreateFacilityBooking: successfully created booking id=%d", result.ID)

	// 7. Вторая фаза: код подтверждения. Ошибка не отменяет бронирование
	artifact, err := uc.artifacts.AttachToFacilityBooking(ctx, result.ID)
	if err != nil {
		uc.logger.Warn("CreateFacilityBooking: booking id=%d saved without verification code: %v", result.ID, err)
	} else {
		result.VerificationCode = &artifact.Code
		result.VerificationURL = &artifact.URL
	}

	// 8. Публикуем событие
	uc.publish(ctx, result)

	return toResponse(result), nil
}

// reserve одна попытка: читаем занятые слоты под блокировкой, проверяем пересечение, вставляем
func (uc *UseCase) reserve(ctx context.Context, booking *domain.FacilityBooking) (*domain.FacilityBooking, error) {
	var created *domain.FacilityBooking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reserved, err := uc.bookingRepo.GetReservedSlots(txCtx, booking.CourtID, booking.BookingDate, booking.Sport)
		if err != nil {
			return fmt.Errorf("%w: failed to get reserved slots: %w", ErrInternal, err)
		}

		if conflicts := domain.FindConflicts(booking.Slots, reserved); len(conflicts) > 0 {
			return &SlotConflictError{Slots: conflicts}
		}

		// Копия, чтобы неудачная попытка не оставила ID в исходной модели
		toInsert := *booking
		toInsert.Slots = append([]string(nil), booking.Slots...)

		created, err = uc.bookingRepo.Create(txCtx, &toInsert)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
		return nil
	})

	return created, err
}

// mapReserveError приводит итоговую ошибку после повторов к ошибке use case
func (uc *UseCase) mapReserveError(err error, booking *domain.FacilityBooking) error {
	var conflict *SlotConflictError
	switch {
	case errors.As(err, &conflict):
		uc.metrics.IncSlotConflict(booking.Sport)
		uc.logger.Warn("CreateFacilityBooking: slots already reserved on court id=%d: %v", booking.CourtID, conflict.Slots)
		return conflict
	case errors.Is(err, bookingRepo.ErrSlotAlreadyReserved):
		// Попытки исчерпаны, а конкурент так и не стал виден чтением
		uc.metrics.IncSlotConflict(booking.Sport)
		uc.logger.Warn("CreateFacilityBooking: unique index rejected slots on court id=%d after %d attempts",
			booking.CourtID, uc.opts.Attempts)
		return &SlotConflictError{Slots: append([]string(nil), booking.Slots...)}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		uc.logger.Error("CreateFacilityBooking: failed to reserve slots: %v", err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

func (uc *UseCase) publish(ctx context.Context, b *domain.FacilityBooking) {
	event := bookingCreatedEvent{
		BookingID:           b.ID,
		UserID:              b.UserID,
		CourtID:             b.CourtID,
		Sport:               b.Sport,
		Date:                b.BookingDate.Format(domain.DateFormat),
		Slots:               b.Slots,
		TotalPrice:          b.TotalPrice,
		VerificationPending: b.VerificationPending(),
	}

	if err := uc.publisher.PublishJSON(ctx, mq.EventFacilityBookingCreated, event); err != nil {
		uc.logger.Warn("CreateFacilityBooking: failed to publish event for booking id=%d: %v", b.ID, err)
	}
}

func toResponse(b *domain.FacilityBooking) *Response {
	return &Response{
		ID:                  b.ID,
		UserID:              b.UserID,
		CourtID:             b.CourtID,
		Sport:               b.Sport,
		BookingDate:         b.BookingDate,
		Slots:               b.Slots,
		UnitPrice:           b.UnitPrice,
		TotalPrice:          b.TotalPrice,
		PaymentProofURL:     b.PaymentProofURL,
		VerificationCode:    b.VerificationCode,
		VerificationURL:     b.VerificationURL,
		VerificationPending: b.VerificationPending(),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}
