package get_coach

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/coaches"
)

const (
	msgInvalidCoachID = "некорректный ID тренера"
	msgNotFound       = "тренер не найден"
)

type Handler struct {
	service CoachService
	logger  Logger
}

func NewHandler(service CoachService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := handlers.PathInt64(r, "coachId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), coachID)
	if err != nil {
		if errors.Is(err, coaches.ErrCoachNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /coaches/{id} - Failed to get coach: coach_id=%d, error=%v", coachID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}
