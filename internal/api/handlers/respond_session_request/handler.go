package respond_session_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	respondSessionRequest "github.com/m04kA/SMC-SportsBookingService/internal/usecase/respond_session_request"
)

const (
	msgInvalidRequestID   = "некорректный ID заявки"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRequestNotFound    = "заявка не найдена"
	msgCourtNotFound      = "корт не найден"
	msgForbidden          = "ответить на заявку может только тренер"
	msgInvalidState       = "заявка уже рассмотрена"
)

type Handler struct {
	useCase RespondSessionRequestUseCase
	logger  Logger
}

func NewHandler(useCase RespondSessionRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/session-requests/{requestId}/respond
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := handlers.PathInt64(r, "requestId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RespondRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /session-requests/{id}/respond - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, requestID))
	if err != nil {
		switch {
		case errors.Is(err, respondSessionRequest.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, respondSessionRequest.ErrRequestNotFound):
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, respondSessionRequest.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, respondSessionRequest.ErrForbidden):
			h.logger.Warn("PATCH /session-requests/{id}/respond - Access denied: request_id=%d, user_id=%d", requestID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, respondSessionRequest.ErrInvalidState):
			h.logger.Warn("PATCH /session-requests/{id}/respond - Request is not pending: request_id=%d", requestID)
			handlers.RespondErrorWithDetails(w, http.StatusConflict, handlers.CodeInvalidState, msgInvalidState, nil)

		default:
			h.logger.Error("PATCH /session-requests/{id}/respond - Failed to respond: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /session-requests/{id}/respond - Request %s: request_id=%d", result.Status, requestID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
