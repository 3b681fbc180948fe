package check_slot_conflicts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	checkSlotConflicts "github.com/m04kA/SMC-SportsBookingService/internal/usecase/check_slot_conflicts"
)

const (
	msgInvalidCourtID     = "некорректный ID корта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownSlots       = "слоты не входят в расписание"
	msgCourtNotFound      = "корт не найден"
	msgSportNotOffered    = "вид спорта недоступен на этом объекте"
)

type Handler struct {
	useCase CheckSlotConflictsUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/courts/{courtId}/check-slots
// Только чтение: занятые слоты возвращаются в теле ответа со статусом 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := handlers.PathInt64(r, "courtId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var req CheckSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts/{id}/check-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(courtID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var unknown *checkSlotConflicts.UnknownSlotsError
		switch {
		case errors.As(err, &unknown):
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.CodeValidation, msgUnknownSlots,
				map[string][]string{"slots": unknown.Slots})

		case errors.Is(err, checkSlotConflicts.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, checkSlotConflicts.ErrSportNotOffered):
			handlers.RespondBadRequest(w, msgSportNotOffered)

		case errors.Is(err, checkSlotConflicts.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /courts/{id}/check-slots - Failed to check slots: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CheckSlotsResponse{OK: result.OK, Conflicts: result.Conflicts})
}
