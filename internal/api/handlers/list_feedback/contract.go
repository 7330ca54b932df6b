package list_feedback

import (
	"context"

	"github.com/m04kA/NSS-BookingService/internal/service/feedback/models"
)

type FeedbackService interface {
	ListPublished(ctx context.Context) (*models.FeedbackListResponse, error)
	ListAll(ctx context.Context) (*models.FeedbackListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
