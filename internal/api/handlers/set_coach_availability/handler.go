package set_coach_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	setCoachAvailability "github.com/m04kA/SMC-SportsBookingService/internal/usecase/set_coach_availability"
)

const (
	msgInvalidCoachID     = "некорректный ID тренера"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgOutsideWindow      = "даты должны быть в пределах от сегодня до сегодня+7 дней"
	msgUnknownSlots       = "слоты не входят в расписание"
	msgCoachNotFound      = "тренер не найден"
	msgForbidden          = "профиль принадлежит другому пользователю"
)

type Handler struct {
	useCase SetCoachAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SetCoachAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/coaches/{coachId}/availability
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

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /coaches/{id}/availability - Invalid request body: %v", err)
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
		var (
			outside *setCoachAvailability.OutsideWindowError
			unknown *setCoachAvailability.UnknownSlotsError
		)

		switch {
		case errors.As(err, &outside):
			h.logger.Warn("PUT /coaches/{id}/availability - Dates outside window: coach_id=%d", coachID)
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.CodeValidation, msgOutsideWindow,
				handlers.SessionSlotsDetails{Slots: handlers.FromDomainSessionSlots(outside.Slots)})

		case errors.As(err, &unknown):
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.CodeValidation, msgUnknownSlots,
				handlers.SessionSlotsDetails{Slots: handlers.FromDomainSessionSlots(unknown.Slots)})

		case errors.Is(err, setCoachAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, setCoachAvailability.ErrCoachNotFound):
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, setCoachAvailability.ErrForbidden):
			h.logger.Warn("PUT /coaches/{id}/availability - Access denied: coach_id=%d, user_id=%d", coachID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /coaches/{id}/availability - Failed to set availability: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /coaches/{id}/availability - Availability updated: coach_id=%d, slots=%d",
		coachID, len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
