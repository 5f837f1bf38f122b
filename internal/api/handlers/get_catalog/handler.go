package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromDomainCatalog(h.service.Get())

	h.logger.Info("GET /catalog - Catalog retrieved: services=%d, professionals=%d",
		len(response.Services), len(response.Professionals))
	handlers.RespondJSON(w, http.StatusOK, response)
}
