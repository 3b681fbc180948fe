package add_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/facilities"
	"github.com/m04kA/SMC-SportsBookingService/internal/service/facilities/models"
)

const (
	msgInvalidFacilityID  = "некорректный ID объекта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFacilityNotFound   = "объект не найден"
	msgNumberTaken        = "корт с таким номером уже существует"
	msgForbidden          = "добавлять корты может только администратор"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/facilities/{facilityId}/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := handlers.PathInt64(r, "facilityId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	var req models.AddCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /facilities/{id}/courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.AddCourt(r.Context(), middleware.GetRole(r.Context()), facilityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, facilities.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, facilities.ErrFacilityNotFound):
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, facilities.ErrCourtNumberTaken):
			handlers.RespondConflict(w, msgNumberTaken)

		default:
			h.logger.Error("POST /facilities/{id}/courts - Failed to add court: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /facilities/{id}/courts - Court added: facility_id=%d, court_id=%d", facilityID, court.ID)
	handlers.RespondJSON(w, http.StatusCreated, court)
}
