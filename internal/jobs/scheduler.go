package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

// Scheduler запускает фоновые задачи салона по расписанию cron.
// Задачи:
//   - completion: переводит записи, время которых прошло, в статус completed
//   - reminder: отправляет клиентам напоминания о завтрашних записях
type Scheduler struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	logger          Logger

	cron *cron.Cron
}

// NewScheduler создает новый планировщик фоновых задач
func NewScheduler(appointmentRepo AppointmentRepository, notifier Notifier, logger Logger) *Scheduler {
	return &Scheduler{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		logger:          logger,
		cron:            cron.New(),
	}
}

// Start регистрирует задачи и запускает планировщик
func (s *Scheduler) Start(completionSpec, reminderSpec string) error {
	if _, err := s.cron.AddFunc(completionSpec, func() {
		if err := s.CompleteFinishedAppointments(context.Background()); err != nil {
			s.logger.Error("completion job failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register completion job: %w", err)
	}

	if _, err := s.cron.AddFunc(reminderSpec, func() {
		if err := s.SendReminders(context.Background()); err != nil {
			s.logger.Error("reminder job failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register reminder job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("jobs: scheduler started, completion=%q, reminder=%q", completionSpec, reminderSpec)
	return nil
}

// Stop останавливает планировщик и дожидается завершения запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("jobs: scheduler stopped")
}

// CompleteFinishedAppointments переводит в статус completed записи,
// расчётное время окончания которых уже прошло
func (s *Scheduler) CompleteFinishedAppointments(ctx context.Context) error {
	now := time.Now()

	ids, err := s.appointmentRepo.GetActiveIDsPastEndTime(ctx, now)
	if err != nil {
		return fmt.Errorf("get appointments past end time: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	s.logger.Info("jobs: marking %d appointments as completed, ids=%v", len(ids), ids)

	if err := s.appointmentRepo.UpdateStatuses(ctx, ids, domain.StatusCompleted); err != nil {
		return fmt.Errorf("update appointment statuses: %w", err)
	}

	return nil
}

// SendReminders отправляет напоминания клиентам, записанным на завтра
func (s *Scheduler) SendReminders(ctx context.Context) error {
	// Дата записи хранится без времени, поэтому фильтр тоже должен быть полуночным
	now := time.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	appts, err := s.appointmentRepo.GetWithFilter(ctx, domain.SalonAppointmentsFilter{
		StartDate: &tomorrow,
		EndDate:   &tomorrow,
	})
	if err != nil {
		return fmt.Errorf("get tomorrow appointments: %w", err)
	}

	sent := 0
	for _, appt := range appts {
		if !appt.IsActive() {
			continue
		}
		s.notifier.SendReminder(appt)
		sent++
	}

	if sent > 0 {
		s.logger.Info("jobs: sent %d reminders for %s", sent, tomorrow.Format(domain.DateFormat))
	}

	return nil
}
