package promotion

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

// Repository репозиторий акций салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория акций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую акцию
func (r *Repository) Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promotions").
		Columns(
			"title",
			"description",
			"discount_percent",
			"valid_from",
			"valid_until",
			"active",
		).
		Values(
			promo.Title,
			promo.Description,
			promo.DiscountPercent,
			promo.ValidFrom,
			promo.ValidUntil,
			promo.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&promo.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return promo, nil
}

// List возвращает акции
// currentOn != nil - только активные акции, действующие на указанную дату (публичная витрина)
// currentOn == nil - все акции (админ-панель)
func (r *Repository) List(ctx context.Context, currentOn *time.Time) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"title",
		"description",
		"discount_percent",
		"valid_from",
		"valid_until",
		"active",
		"created_at",
		"updated_at",
	).
		From("promotions").
		OrderBy("valid_until ASC, id ASC")

	if currentOn != nil {
		day := time.Date(currentOn.Year(), currentOn.Month(), currentOn.Day(), 0, 0, 0, 0, currentOn.Location())
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"active": true}).
			Where(squirrel.LtOrEq{"valid_from": day}).
			Where(squirrel.GtOrEq{"valid_until": day})
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

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		var promo domain.Promotion
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&promo.ID,
			&promo.Title,
			&promo.Description,
			&promo.DiscountPercent,
			&promo.ValidFrom,
			&promo.ValidUntil,
			&promo.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		promo.CreatedAt = createdAt.Time
		promo.UpdatedAt = updatedAt.Time

		promotions = append(promotions, &promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return promotions, nil
}

// Delete удаляет акцию
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("promotions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPromotionNotFound
	}

	return nil
}
