package promotions

import (
	"context"
	"errors"
	"fmt"

	promotionRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/promotion"
	"github.com/m04kA/NSS-BookingService/internal/service/promotions/models"
)

// Service сервис акций салона
type Service struct {
	promotionRepo PromotionRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса акций
func NewService(promotionRepo PromotionRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// ListCurrent возвращает действующие акции для публичной витрины
func (s *Service) ListCurrent(ctx context.Context) (*models.PromotionListResponse, error) {
	now := s.timeProvider.Now()

	promotions, err := s.promotionRepo.List(ctx, &now)
	if err != nil {
		s.logger.Error("ListCurrent: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCurrent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCurrent: successfully fetched %d promotions", len(promotions))
	return models.FromDomainPromotionList(promotions), nil
}

// ListAll возвращает все акции, включая завершённые (для администратора)
func (s *Service) ListAll(ctx context.Context) (*models.PromotionListResponse, error) {
	promotions, err := s.promotionRepo.List(ctx, nil)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPromotionList(promotions), nil
}

// Create создаёт новую акцию
func (s *Service) Create(ctx context.Context, req *models.CreatePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Create: creating promotion title=%q", req.Title)

	promo, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid promotion: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.promotionRepo.Create(ctx, promo)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created promotion id=%d", created.ID)
	return models.FromDomainPromotion(created), nil
}

// Delete удаляет акцию
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting promotion id=%d", id)

	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Delete: promotion id=%d not found", id)
			return ErrPromotionNotFound
		}
		s.logger.Error("Delete: repository error for promotion id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted promotion id=%d", id)
	return nil
}
