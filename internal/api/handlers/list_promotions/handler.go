package list_promotions

import (
	"net/http"

	"github.com/m04kA/NSS-BookingService/internal/api/handlers"
)

type Handler struct {
	service PromotionService
	logger  Logger
}

func NewHandler(service PromotionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/promotions
// Возвращает только действующие акции
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCurrent(r.Context())
	if err != nil {
		h.logger.Error("GET /promotions - Failed to list promotions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /promotions - Promotions retrieved successfully: count=%d", len(result.Promotions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdmin GET /api/v1/admin/promotions
// Возвращает все акции, включая завершённые
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/promotions - Failed to list promotions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/promotions - Promotions retrieved successfully: count=%d", len(result.Promotions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
