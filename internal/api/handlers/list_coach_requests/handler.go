package list_coach_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/sessions"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/sessions/models"
)

const (
	msgInvalidCoachID = "некорректный ID тренера"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgCoachNotFound  = "тренер не найден"
	msgForbidden      = "заявки видит только тренер"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/session-requests?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := handlers.PathInt64(r, "coachId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.ListRequestsRequest{CoachID: coachID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.ListByCoach(r.Context(), userID, middleware.GetRole(r.Context()), req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, sessions.ErrCoachNotFound):
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /coaches/{id}/session-requests - Failed to list requests: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coaches/{id}/session-requests - Requests retrieved: coach_id=%d, count=%d",
		coachID, len(result.Requests))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleMine GET /api/v1/session-requests
func (h *Handler) HandleMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /session-requests - Failed to list requests: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
