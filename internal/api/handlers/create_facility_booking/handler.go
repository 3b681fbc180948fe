package create_facility_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	createFacilityBooking "github.com/m04kA/SMC-SportsBookingService/internal/usecase/create_facility_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidInput        = "некорректные данные бронирования"
	msgEmptySlots          = "нужно выбрать хотя бы один слот"
	msgUnknownSlots        = "слоты не входят в расписание"
	msgDateInPast          = "дата бронирования уже прошла"
	msgMissingPaymentProof = "нужно приложить чек оплаты"
	msgCourtNotFound       = "корт не найден"
	msgSportNotOffered     = "вид спорта недоступен на этом объекте"
	msgSlotConflict        = "выбранные слоты уже заняты"
)

type Handler struct {
	useCase CreateFacilityBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateFacilityBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateFacilityBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var (
			conflict *createFacilityBooking.SlotConflictError
			unknown  *createFacilityBooking.UnknownSlotsError
		)

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Slots already reserved: user_id=%d, court_id=%d, slots=%v",
				userID, req.CourtID, conflict.Slots)
			handlers.RespondErrorWithDetails(w, http.StatusConflict, handlers.CodeConflict, msgSlotConflict,
				SlotsDetails{Slots: conflict.Slots})

		case errors.As(err, &unknown):
			h.logger.Warn("POST /bookings - Unknown slots: %v", unknown.Slots)
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.CodeValidation, msgUnknownSlots,
				SlotsDetails{Slots: unknown.Slots})

		case errors.Is(err, createFacilityBooking.ErrEmptySlots):
			handlers.RespondBadRequest(w, msgEmptySlots)

		case errors.Is(err, createFacilityBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createFacilityBooking.ErrMissingPaymentProof):
			handlers.RespondBadRequest(w, msgMissingPaymentProof)

		case errors.Is(err, createFacilityBooking.ErrSportNotOffered):
			handlers.RespondBadRequest(w, msgSportNotOffered)

		case errors.Is(err, createFacilityBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createFacilityBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, court_id=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, court_id=%d",
		result.ID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
