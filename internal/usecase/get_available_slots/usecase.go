package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/schedule"
)

// UseCase use case для получения сетки доступных слотов на дату
//
// Сам расчёт - чистая функция от (расписание, длительность услуги, записи дня):
// ни текущего времени, ни скрытого состояния, один и тот же вход всегда даёт
// один и тот же результат
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	scheduleRepo    ScheduleRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		scheduleRepo:    scheduleRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из прайс-листа
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("GetAvailableSlots: service id=%d is not active", req.ServiceID)
		return nil, ErrServiceNotActive
	}

	// 3. Получаем расписание салона
	schedule, err := uc.scheduleRepo.Get(ctx)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// Если расписание не настроено, используем дефолтные значения
	if schedule == nil {
		schedule = domain.DefaultSchedule()
		uc.logger.Info("GetAvailableSlots: using default schedule")
	}

	// 4. Получаем активные записи на эту дату
	filter := domain.SalonAppointmentsFilter{
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только записи, занимающие слот
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Собираем занятые тики и строим сетку слотов
	occupied := domain.OccupiedTicks(appointments, schedule.SlotGranularityMinutes)
	candidates := buildCandidateSlots(schedule, service.DurationMinutes, occupied)

	slots := make([]Slot, len(candidates))
	for i, c := range candidates {
		slots[i] = Slot{
			StartTime: c.StartTime,
			Available: c.Available,
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
