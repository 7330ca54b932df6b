package feedback

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	"github.com/m04kA/NSS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/NSS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий отзывов клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв
func (r *Repository) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("feedback").
		Columns(
			"client_id",
			"client_name",
			"rating",
			"comment",
			"published",
		).
		Values(
			fb.ClientID,
			fb.ClientName,
			fb.Rating,
			fb.Comment,
			fb.Published,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&fb.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	fb.CreatedAt = createdAt.Time
	fb.UpdatedAt = updatedAt.Time

	return fb, nil
}

// List возвращает отзывы
// onlyPublished = true - только прошедшие модерацию (публичная витрина)
func (r *Repository) List(ctx context.Context, onlyPublished bool) ([]*domain.Feedback, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"client_id",
		"client_name",
		"rating",
		"comment",
		"published",
		"created_at",
		"updated_at",
	).
		From("feedback").
		OrderBy("created_at DESC")

	if onlyPublished {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"published": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	feedbacks := make([]*domain.Feedback, 0)
	for rows.Next() {
		var fb domain.Feedback
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&fb.ID,
			&fb.ClientID,
			&fb.ClientName,
			&fb.Rating,
			&fb.Comment,
			&fb.Published,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		fb.CreatedAt = createdAt.Time
		fb.UpdatedAt = updatedAt.Time

		feedbacks = append(feedbacks, &fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return feedbacks, nil
}

// SetPublished публикует или скрывает отзыв (модерация)
func (r *Repository) SetPublished(ctx context.Context, id int64, published bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("feedback").
		Set("published", published).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPublished - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPublished - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetPublished - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

// AverageRating возвращает средний рейтинг и количество отзывов за период
func (r *Repository) AverageRating(ctx context.Context, from, to time.Time) (float64, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)", "COUNT(*)").
		From("feedback").
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to.AddDate(0, 0, 1)}).
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: AverageRating - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("%w: AverageRating - scan row: %v", ErrScanRow, err)
	}

	return avg, count, nil
}
