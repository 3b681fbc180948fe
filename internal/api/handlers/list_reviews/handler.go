package list_reviews

import (
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
)

const msgInvalidCoachID = "некорректный ID тренера"

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := handlers.PathInt64(r, "coachId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	result, err := h.service.List(r.Context(), coachID)
	if err != nil {
		h.logger.Error("GET /coaches/{id}/reviews - Failed to list reviews: coach_id=%d, error=%v", coachID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
