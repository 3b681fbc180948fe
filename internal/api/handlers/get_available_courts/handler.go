package get_available_courts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	getAvailableCourts "github.com/m04kA/SMC-SportsBookingService/internal/usecase/get_available_courts"
)

const (
	msgMissingParams = "параметры sport и slot обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownSlot   = "слот не входит в расписание"
)

type Handler struct {
	useCase GetAvailableCourtsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableCourtsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/available
// Query params: sport, date (YYYY-MM-DD), slot ("08:00 - 09:00")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sport, slot := query.Get("sport"), query.Get("slot")
	if sport == "" || slot == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /courts/available - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableCourts.Request{
		Sport: sport,
		Date:  date,
		Slot:  slot,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableCourts.ErrUnknownSlot):
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.CodeValidation, msgUnknownSlot,
				map[string][]string{"slots": {slot}})

		case errors.Is(err, getAvailableCourts.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /courts/available - Failed to get courts: sport=%s, slot=%s, error=%v", sport, slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/available - Courts retrieved successfully: sport=%s, slot=%s, count=%d",
		result.Sport, result.Slot, len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
