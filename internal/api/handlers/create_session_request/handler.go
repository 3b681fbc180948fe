package create_session_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	createSessionRequest "github.com/m04kA/SMC-SportsBookingService/internal/usecase/create_session_request"
)

const (
	msgInvalidCoachID     = "некорректный ID тренера"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEmptySlots         = "нужно выбрать хотя бы одну пару (дата, слот)"
	msgUnavailableSlots   = "тренер недоступен в выбранное время"
	msgSportMismatch      = "тренер не ведет этот вид спорта"
	msgCoachNotFound      = "тренер не найден"
)

type Handler struct {
	useCase CreateSessionRequestUseCase
	logger  Logger
}

func NewHandler(useCase CreateSessionRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/coaches/{coachId}/session-requests
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

	var req CreateSessionRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches/{id}/session-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, coachID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var unavailable *createSessionRequest.UnavailableSlotsError

		switch {
		case errors.As(err, &unavailable):
			h.logger.Warn("POST /coaches/{id}/session-requests - Slots not in availability: coach_id=%d, user_id=%d",
				coachID, userID)
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.CodeValidation, msgUnavailableSlots,
				handlers.SessionSlotsDetails{Slots: handlers.FromDomainSessionSlots(unavailable.Slots)})

		case errors.Is(err, createSessionRequest.ErrEmptySlots):
			handlers.RespondBadRequest(w, msgEmptySlots)

		case errors.Is(err, createSessionRequest.ErrSportMismatch):
			handlers.RespondBadRequest(w, msgSportMismatch)

		case errors.Is(err, createSessionRequest.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createSessionRequest.ErrCoachNotFound):
			handlers.RespondNotFound(w, msgCoachNotFound)

		default:
			h.logger.Error("POST /coaches/{id}/session-requests - Failed to create request: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches/{id}/session-requests - Request created: request_id=%d, coach_id=%d, user_id=%d",
		result.ID, coachID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
