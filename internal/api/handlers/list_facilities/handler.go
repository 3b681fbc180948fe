package list_facilities

import (
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
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

// Handle GET /api/v1/facilities?sport=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Фильтр по виду спорта опционален
	var sportPtr *string
	if sport := r.URL.Query().Get("sport"); sport != "" {
		sportPtr = &sport
	}

	result, err := h.service.List(r.Context(), sportPtr)
	if err != nil {
		h.logger.Error("GET /facilities - Failed to list facilities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities - Facilities retrieved successfully: count=%d", len(result.Facilities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
