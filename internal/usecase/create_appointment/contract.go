package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetWithFilter получает записи салона на конкретную дату (FOR UPDATE внутри транзакции)
	GetWithFilter(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error)
}

// CatalogRepository интерфейс репозитория прайс-листа
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.CatalogService, error)
	GetMasterByID(ctx context.Context, id int64) (*domain.Master, error)
}

// ScheduleRepository интерфейс репозитория расписания салона
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.SalonSchedule, error)
}

// TransactionManager интерфейс менеджера сериализуемых транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомлений клиенту
type Notifier interface {
	SendConfirmation(appt *domain.Appointment)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
