package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/NSS-BookingService/internal/service/schedule/models"
)

// Service сервис расписания салона
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Get возвращает текущее расписание салона
// Если расписание ещё не настроено, возвращает значения по умолчанию
func (s *Service) Get(ctx context.Context) (*models.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("Get: schedule not configured, returning defaults")
			return models.FromDomainSchedule(domain.DefaultSchedule()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// Update сохраняет новое расписание салона
// Изменение влияет только на будущие расчёты слотов, существующие записи не трогаем
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule to %s-%s, granularity=%d",
		req.OpenTime, req.CloseTime, req.SlotGranularityMinutes)

	schedule, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid schedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.scheduleRepo.Upsert(ctx, schedule)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: schedule saved, id=%d", saved.ID)
	return models.FromDomainSchedule(saved), nil
}
