package get_available_slots

import (
	"context"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetWithFilter получает записи салона на конкретную дату
	GetWithFilter(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error)
}

// CatalogRepository интерфейс репозитория прайс-листа
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.CatalogService, error)
}

// ScheduleRepository интерфейс репозитория расписания салона
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.SalonSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
