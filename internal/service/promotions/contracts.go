package promotions

import (
	"context"
	"time"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

// PromotionRepository интерфейс репозитория акций
type PromotionRepository interface {
	Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error)
	// List возвращает акции: currentOn = nil для администратора (все акции),
	// иначе только активные акции, действующие на указанную дату
	List(ctx context.Context, currentOn *time.Time) ([]*domain.Promotion, error)
	Delete(ctx context.Context, id int64) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
