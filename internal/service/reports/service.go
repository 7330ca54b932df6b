package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	"github.com/m04kA/NSS-BookingService/internal/service/reports/models"
)

// Service сервис отчётов для администратора
type Service struct {
	appointmentRepo AppointmentRepository
	feedbackRepo    FeedbackRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(
	appointmentRepo AppointmentRepository,
	feedbackRepo FeedbackRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		feedbackRepo:    feedbackRepo,
		logger:          logger,
	}
}

// BuildReport собирает сводный отчёт салона за период:
// количество записей по статусам, выручка по завершённым записям и средний рейтинг
func (s *Service) BuildReport(ctx context.Context, from, to time.Time) (*models.ReportResponse, error) {
	if to.Before(from) {
		return nil, ErrInvalidPeriod
	}

	s.logger.Info("BuildReport: building report for %s to %s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	counts, err := s.appointmentRepo.CountByStatus(ctx, from, to)
	if err != nil {
		s.logger.Error("BuildReport: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: BuildReport - count appointments: %v", ErrInternal, err)
	}

	revenue, err := s.appointmentRepo.CompletedRevenue(ctx, from, to)
	if err != nil {
		s.logger.Error("BuildReport: failed to calculate revenue: %v", err)
		return nil, fmt.Errorf("%w: BuildReport - completed revenue: %v", ErrInternal, err)
	}

	avgRating, feedbackCount, err := s.feedbackRepo.AverageRating(ctx, from, to)
	if err != nil {
		s.logger.Error("BuildReport: failed to calculate average rating: %v", err)
		return nil, fmt.Errorf("%w: BuildReport - average rating: %v", ErrInternal, err)
	}

	total := 0
	byStatus := make(map[string]int, len(counts))
	for status, count := range counts {
		byStatus[string(status)] = count
		total += count
	}

	report := &models.ReportResponse{
		From:              from.Format(domain.DateFormat),
		To:                to.Format(domain.DateFormat),
		TotalAppointments: total,
		ByStatus:          byStatus,
		CompletedRevenue:  revenue,
		AverageRating:     avgRating,
		FeedbackCount:     feedbackCount,
	}

	s.logger.Info("BuildReport: report ready, total=%d, revenue=%.2f", total, revenue)
	return report, nil
}
