package create_coach_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/coaches"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/coaches/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "профиль может создать только тренер"
	msgProfileExists      = "профиль тренера уже существует"
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

// Handle POST /api/v1/coaches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.CreateProfile(r.Context(), userID, middleware.GetRole(r.Context()), &req)
	if err != nil {
		switch {
		case errors.Is(err, coaches.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, coaches.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, coaches.ErrProfileExists):
			handlers.RespondConflict(w, msgProfileExists)

		default:
			h.logger.Error("POST /coaches - Failed to create profile: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches - Coach profile created: coach_id=%d, user_id=%d", profile.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, profile)
}
