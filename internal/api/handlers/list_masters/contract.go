package list_masters

import (
	"context"

	"github.com/m04kA/NSS-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListMasters(ctx context.Context) (*models.MasterListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
