package finalize_session_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	finalizeSessionBooking "github.com/m04kA/SMC-SportsBookingService/internal/usecase/finalize_session_booking"
)

const (
	msgInvalidRequestID = "некорректный ID заявки"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgRequestNotFound  = "заявка не найдена"
	msgForbidden        = "оформить заявку может только ее автор или тренер"
	msgPrecondition     = "заявку нельзя оформить"
)

type Handler struct {
	useCase FinalizeSessionBookingUseCase
	logger  Logger
}

func NewHandler(useCase FinalizeSessionBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/session-requests/{requestId}/booking
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

	result, err := h.useCase.Execute(r.Context(), &finalizeSessionBooking.Request{
		ActorUserID: userID,
		RequestID:   requestID,
	})
	if err != nil {
		switch {
		case errors.Is(err, finalizeSessionBooking.ErrPreconditionFailed):
			reason := finalizeSessionBooking.PreconditionReason(err)
			h.logger.Warn("POST /session-requests/{id}/booking - Precondition failed: request_id=%d, reason=%s",
				requestID, reason)
			handlers.RespondErrorWithDetails(w, http.StatusPreconditionFailed, handlers.CodePreconditionFailed,
				msgPrecondition, PreconditionDetails{Reason: reason})

		case errors.Is(err, finalizeSessionBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, finalizeSessionBooking.ErrRequestNotFound):
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, finalizeSessionBooking.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /session-requests/{id}/booking - Failed to finalize: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /session-requests/{id}/booking - Session booked: booking_id=%d, request_id=%d",
		result.ID, requestID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
