package list_promotions

import (
	"context"

	"github.com/m04kA/NSS-BookingService/internal/service/promotions/models"
)

type PromotionService interface {
	ListCurrent(ctx context.Context) (*models.PromotionListResponse, error)
	ListAll(ctx context.Context) (*models.PromotionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
