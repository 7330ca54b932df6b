package create_feedback

import (
	"errors"
	"net/http"

	"github.com/m04kA/NSS-BookingService/internal/api/handlers"
	"github.com/m04kA/NSS-BookingService/internal/service/feedback"
	"github.com/m04kA/NSS-BookingService/internal/service/feedback/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFeedback    = "некорректные данные отзыва"
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

// Handle POST /api/v1/feedback
// Публичный эндпоинт, отзыв может оставить и анонимный посетитель сайта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /feedback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrInvalidInput):
			h.logger.Warn("POST /feedback - Invalid feedback: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFeedback)

		default:
			h.logger.Error("POST /feedback - Failed to create feedback: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /feedback - Feedback created successfully: feedback_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
