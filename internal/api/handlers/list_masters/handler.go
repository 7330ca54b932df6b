package list_masters

import (
	"net/http"

	"github.com/m04kA/NSS-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/masters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListMasters(r.Context())
	if err != nil {
		h.logger.Error("GET /masters - Failed to list masters: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /masters - Masters retrieved successfully: count=%d", len(result.Masters))
	handlers.RespondJSON(w, http.StatusOK, result)
}
