package checkin

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	checkinService "github.com/m04kA/SMC-SportsBookingService/internal/service/checkin"
)

const (
	msgInvalidCode = "некорректный код подтверждения"
	msgNotFound    = "бронирование с таким кодом не найдено"
	msgForbidden   = "проверять коды может только охрана"
)

type Handler struct {
	service CheckinService
	logger  Logger
}

func NewHandler(service CheckinService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/checkin/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	result, err := h.service.Verify(r.Context(), middleware.GetRole(r.Context()), code)
	if err != nil {
		switch {
		case errors.Is(err, checkinService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, checkinService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, checkinService.ErrCodeNotFound):
			h.logger.Warn("GET /checkin/{code} - Unknown verification code")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /checkin/{code} - Failed to verify code: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /checkin/{code} - Code verified: kind=%s, booking_id=%d", result.Kind, result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
