package reports

import (
	"context"
	"time"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	CountByStatus(ctx context.Context, from, to time.Time) (map[domain.AppointmentStatus]int, error)
	CompletedRevenue(ctx context.Context, from, to time.Time) (float64, error)
}

// FeedbackRepository интерфейс репозитория отзывов
type FeedbackRepository interface {
	AverageRating(ctx context.Context, from, to time.Time) (float64, int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
