package jobs

import (
	"context"
	"time"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetActiveIDsPastEndTime(ctx context.Context, now time.Time) ([]int64, error)
	UpdateStatuses(ctx context.Context, ids []int64, status domain.AppointmentStatus) error
	GetWithFilter(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error)
}

// Notifier интерфейс отправки уведомлений клиенту
type Notifier interface {
	SendReminder(appt *domain.Appointment)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
