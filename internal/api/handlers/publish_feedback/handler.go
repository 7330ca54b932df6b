package publish_feedback

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NSS-BookingService/internal/api/handlers"
	"github.com/m04kA/NSS-BookingService/internal/service/feedback"
	"github.com/m04kA/NSS-BookingService/internal/service/feedback/models"
)

const (
	msgInvalidFeedbackID  = "некорректный ID отзыва"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "отзыв не найден"
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

// Handle PATCH /api/v1/admin/feedback/{feedbackId}/publish
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем feedbackId из URL
	vars := mux.Vars(r)
	feedbackIDStr := vars["feedbackId"]

	feedbackID, err := strconv.ParseInt(feedbackIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/feedback/{id}/publish - Invalid feedback ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFeedbackID)
		return
	}

	// Декодируем body
	var req models.PublishFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/feedback/{id}/publish - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.SetPublished(r.Context(), feedbackID, req.Published)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrFeedbackNotFound):
			h.logger.Warn("PATCH /admin/feedback/{id}/publish - Feedback not found: feedback_id=%d", feedbackID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/feedback/{id}/publish - Failed to update feedback: feedback_id=%d, error=%v",
				feedbackID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/feedback/{id}/publish - Feedback updated successfully: feedback_id=%d, published=%t",
		feedbackID, req.Published)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
