package retry_verification

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
	msgUnavailable      = "сервис кодов подтверждения недоступен, повторите позже"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleFacility POST /api/v1/bookings/{bookingId}/verification
func (h *Handler) HandleFacility(w http.ResponseWriter, r *http.Request) {
	bookingID, userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	role := middleware.GetRole(r.Context())
	booking, err := h.service.RetryFacilityVerification(r.Context(), bookingID, userID, role)
	if err != nil {
		h.respondError(w, "POST /bookings/{id}/verification", bookingID, userID, role, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/verification - booking_id=%d, pending=%t", bookingID, booking.VerificationPending)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

// HandleSession POST /api/v1/session-bookings/{bookingId}/verification
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	bookingID, userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	role := middleware.GetRole(r.Context())
	booking, err := h.service.RetrySessionVerification(r.Context(), bookingID, userID, role)
	if err != nil {
		h.respondError(w, "POST /session-bookings/{id}/verification", bookingID, userID, role, err)
		return
	}

	h.logger.Info("POST /session-bookings/{id}/verification - booking_id=%d, pending=%t", bookingID, booking.VerificationPending)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return 0, 0, false
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, 0, false
	}
	return bookingID, userID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, bookingID, userID int64, role domain.Role, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: booking_id=%d, user_id=%d, role=%s", route, bookingID, userID, role)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, bookings.ErrVerificationUnavailable):
		h.logger.Warn("%s - Verification still unavailable: booking_id=%d, error=%v", route, bookingID, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgUnavailable)

	default:
		h.logger.Error("%s - Failed to retry verification: booking_id=%d, error=%v", route, bookingID, err)
		handlers.RespondInternalError(w)
	}
}
