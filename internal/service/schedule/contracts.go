package schedule

import (
	"context"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания салона
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.SalonSchedule, error)
	Upsert(ctx context.Context, schedule *domain.SalonSchedule) (*domain.SalonSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
