package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	"github.com/m04kA/NSS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/NSS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий конфигурации расписания салона
// Салон один, поэтому таблица salon_schedule содержит не более одной строки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает текущее расписание салона
func (r *Repository) Get(ctx context.Context) (*domain.SalonSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"open_time",
		"close_time",
		"slot_granularity_minutes",
		"advance_booking_days",
		"min_booking_notice_minutes",
		"created_at",
		"updated_at",
	).
		From("salon_schedule").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.SalonSchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.OpenTime,
		&schedule.CloseTime,
		&schedule.SlotGranularityMinutes,
		&schedule.AdvanceBookingDays,
		&schedule.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan schedule: %v", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// Upsert сохраняет расписание салона (создаёт строку или обновляет существующую)
func (r *Repository) Upsert(ctx context.Context, schedule *domain.SalonSchedule) (*domain.SalonSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	existing, err := r.Get(ctx)
	if err != nil && err != ErrScheduleNotFound {
		return nil, err
	}

	if existing == nil {
		query, args, err := psqlbuilder.Insert("salon_schedule").
			Columns(
				"open_time",
				"close_time",
				"slot_granularity_minutes",
				"advance_booking_days",
				"min_booking_notice_minutes",
			).
			Values(
				schedule.OpenTime,
				schedule.CloseTime,
				schedule.SlotGranularityMinutes,
				schedule.AdvanceBookingDays,
				schedule.MinBookingNoticeMinutes,
			).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt, updatedAt sql.NullTime
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
		}

		schedule.CreatedAt = createdAt.Time
		schedule.UpdatedAt = updatedAt.Time

		return schedule, nil
	}

	query, args, err := psqlbuilder.Update("salon_schedule").
		Set("open_time", schedule.OpenTime).
		Set("close_time", schedule.CloseTime).
		Set("slot_granularity_minutes", schedule.SlotGranularityMinutes).
		Set("advance_booking_days", schedule.AdvanceBookingDays).
		Set("min_booking_notice_minutes", schedule.MinBookingNoticeMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": existing.ID}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute update: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}
