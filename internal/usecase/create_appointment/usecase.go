package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	storageCatalog "github.com/m04kA/NSS-BookingService/internal/infra/storage/catalog"
	storageSchedule "github.com/m04kA/NSS-BookingService/internal/infra/storage/schedule"
)

// UseCase создание записи клиента на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute создаёт запись: проверяет услугу и мастера, валидирует дату и время,
// в сериализуемой транзакции перепроверяет доступность слота и сохраняет запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Получаем услугу из прайс-листа
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, storageCatalog.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("Execute - failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Execute - get service: %v", ErrInternal, err)
	}

	if !service.Active {
		return nil, fmt.Errorf("%w: service %d", ErrServiceNotActive, req.ServiceID)
	}

	// 3. Проверяем мастера, если он выбран
	var master *domain.Master
	if req.MasterID != nil {
		master, err = uc.catalogRepo.GetMasterByID(ctx, *req.MasterID)
		if err != nil {
			if errors.Is(err, storageCatalog.ErrMasterNotFound) {
				return nil, fmt.Errorf("%w: master %d", ErrMasterNotFound, *req.MasterID)
			}
			uc.logger.Error("Execute - failed to get master %d: %v", *req.MasterID, err)
			return nil, fmt.Errorf("%w: Execute - get master: %v", ErrInternal, err)
		}

		if !master.Active {
			return nil, fmt.Errorf("%w: master %d", ErrMasterNotActive, *req.MasterID)
		}
	}

	now := uc.timeProvider.Now()

	var created *domain.Appointment

	// 4. Создание записи в сериализуемой транзакции, чтобы исключить двойное бронирование
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем расписание салона
		schedule, err := uc.scheduleRepo.Get(txCtx)
		if err != nil {
			if errors.Is(err, storageSchedule.ErrScheduleNotFound) {
				schedule = domain.DefaultSchedule()
			} else {
				uc.logger.Error("Execute - failed to get schedule: %v", err)
				return fmt.Errorf("%w: Execute - get schedule: %v", ErrInternal, err)
			}
		}

		// 4.2. Проверяем дату и минимальное время до начала
		if err := validateDate(req.Date, now, schedule); err != nil {
			return err
		}

		if err := validateBookingNotice(req.Date, req.StartTime, now, schedule); err != nil {
			return err
		}

		// 4.3. Получаем записи на этот день с блокировкой строк
		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, domain.SalonAppointmentsFilter{
			StartDate: &req.Date,
			EndDate:   &req.Date,
		})
		if err != nil {
			uc.logger.Error("Execute - failed to get appointments for %s: %v", req.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: Execute - get appointments: %v", ErrInternal, err)
		}

		// 4.4. Перепроверяем доступность выбранного слота
		if err := checkSlotAvailable(schedule, service.DurationMinutes, appointments, req.StartTime); err != nil {
			return err
		}

		// 4.5. Сохраняем запись со снимком данных услуги и мастера
		appt := &domain.Appointment{
			Code:            uuid.NewString(),
			ClientID:        req.ClientID,
			ServiceID:       req.ServiceID,
			MasterID:        req.MasterID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusConfirmed,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			ClientName:      req.ClientName,
			ClientPhone:     optionalString(req.ClientPhone),
			ClientEmail:     optionalString(req.ClientEmail),
			Notes:           optionalString(req.Notes),
		}
		if master != nil {
			appt.MasterName = &master.Name
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("Execute - failed to create appointment: %v", err)
			return fmt.Errorf("%w: Execute - create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Info("Execute - appointment %d created for client %d on %s at %s",
		created.ID, created.ClientID, created.AppointmentDate.Format(domain.DateFormat), created.StartTime)

	// 5. Отправляем подтверждение клиенту (вне транзакции)
	uc.notifier.SendConfirmation(created)

	return &Response{Appointment: created}, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
