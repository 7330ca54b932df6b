package catalog

import (
	"context"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория прайс-листа
type CatalogRepository interface {
	ListServices(ctx context.Context, onlyActive bool) ([]*domain.CatalogService, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.CatalogService, error)
	ListMasters(ctx context.Context, onlyActive bool) ([]*domain.Master, error)
	GetMasterByID(ctx context.Context, id int64) (*domain.Master, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
