package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/reviews"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/reviews/models"
)

const (
	msgInvalidCoachID     = "некорректный ID тренера"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgCoachNotFound      = "тренер не найден"
)

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

// Handle POST /api/v1/coaches/{coachId}/reviews
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

	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.Create(r.Context(), userID, coachID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidRating):
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, reviews.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, reviews.ErrCoachNotFound):
			handlers.RespondNotFound(w, msgCoachNotFound)

		default:
			h.logger.Error("POST /coaches/{id}/reviews - Failed to create review: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches/{id}/reviews - Review created: review_id=%d, coach_id=%d", review.ID, coachID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
