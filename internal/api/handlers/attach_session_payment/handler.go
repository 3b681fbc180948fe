package attach_session_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	attachSessionPayment "github.com/m04kA/SMC-SportsBookingService/internal/usecase/attach_session_payment"
)

const (
	msgInvalidRequestID   = "некорректный ID заявки"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingProof       = "ссылка на чек обязательна"
	msgRequestNotFound    = "заявка не найдена"
	msgForbidden          = "чек может приложить только автор заявки"
	msgInvalidState       = "заявка уже оформлена"
)

type Handler struct {
	useCase AttachSessionPaymentUseCase
	logger  Logger
}

func NewHandler(useCase AttachSessionPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/session-requests/{requestId}/payment-proof
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

	var req AttachPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /session-requests/{id}/payment-proof - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &attachSessionPayment.Request{
		ActorUserID:     userID,
		RequestID:       requestID,
		PaymentProofURL: req.PaymentProofURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, attachSessionPayment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingProof)

		case errors.Is(err, attachSessionPayment.ErrRequestNotFound):
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, attachSessionPayment.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, attachSessionPayment.ErrInvalidState):
			handlers.RespondErrorWithDetails(w, http.StatusConflict, handlers.CodeInvalidState, msgInvalidState, nil)

		default:
			h.logger.Error("PUT /session-requests/{id}/payment-proof - Failed to attach proof: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /session-requests/{id}/payment-proof - Payment proof attached: request_id=%d", requestID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
