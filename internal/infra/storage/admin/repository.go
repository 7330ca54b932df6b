package admin

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	"github.com/m04kA/NSS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/NSS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий учётных записей администраторов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail возвращает администратора по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"email",
		"password_hash",
		"name",
		"created_at",
	).
		From("admins").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var adm domain.Admin
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&adm.ID,
		&adm.Email,
		&adm.PasswordHash,
		&adm.Name,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan admin: %v", ErrScanRow, err)
	}

	adm.CreatedAt = createdAt.Time

	return &adm, nil
}
