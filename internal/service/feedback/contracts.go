package feedback

import (
	"context"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

// FeedbackRepository интерфейс репозитория отзывов
type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context, onlyPublished bool) ([]*domain.Feedback, error)
	SetPublished(ctx context.Context, id int64, published bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
