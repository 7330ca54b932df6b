package list_feedback

import (
	"net/http"

	"github.com/m04kA/NSS-BookingService/internal/api/handlers"
)

type Handler struct {
	service FeedbackService
	logger  Logger
}

func NewHandler(service FeedbackService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/feedback
// Возвращает только опубликованные отзывы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPublished(r.Context())
	if err != nil {
		h.logger.Error("GET /feedback - Failed to list feedback: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /feedback - Feedback retrieved successfully: count=%d", len(result.Feedback))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdmin GET /api/v1/admin/feedback
// Возвращает все отзывы, включая неопубликованные
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/feedback - Failed to list feedback: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/feedback - Feedback retrieved successfully: count=%d", len(result.Feedback))
	handlers.RespondJSON(w, http.StatusOK, result)
}
