package list_slots

import (
	"net/http"

	"github.com/m04kA/SMC-SportsBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

// SlotsResponse каталог слотов
type SlotsResponse struct {
	Slots []string `json:"slots"`
}

type Handler struct {
	catalog *domain.SlotCatalog
}

func NewHandler(catalog *domain.SlotCatalog) *Handler {
	return &Handler{catalog: catalog}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{Slots: h.catalog.Slots()})
}
