package feedback

import (
	"context"
	"errors"
	"fmt"

	feedbackRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/feedback"
	"github.com/m04kA/NSS-BookingService/internal/service/feedback/models"
)

// Service сервис отзывов клиентов
type Service struct {
	feedbackRepo FeedbackRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(feedbackRepo FeedbackRepository, logger Logger) *Service {
	return &Service{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// Create сохраняет новый отзыв
// Отзыв попадает на сайт только после публикации администратором
func (s *Service) Create(ctx context.Context, req *models.CreateFeedbackRequest) (*models.FeedbackResponse, error) {
	s.logger.Info("Create: creating feedback from %q, rating=%d", req.ClientName, req.Rating)

	fb, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid feedback: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.feedbackRepo.Create(ctx, fb)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created feedback id=%d", created.ID)
	return models.FromDomainFeedback(created), nil
}

// ListPublished возвращает опубликованные отзывы для сайта
func (s *Service) ListPublished(ctx context.Context) (*models.FeedbackListResponse, error) {
	feedback, err := s.feedbackRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListPublished: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPublished - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFeedbackList(feedback), nil
}

// ListAll возвращает все отзывы, включая неопубликованные (для администратора)
func (s *Service) ListAll(ctx context.Context) (*models.FeedbackListResponse, error) {
	feedback, err := s.feedbackRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFeedbackList(feedback), nil
}

// SetPublished публикует или скрывает отзыв
func (s *Service) SetPublished(ctx context.Context, id int64, published bool) error {
	s.logger.Info("SetPublished: feedback id=%d, published=%t", id, published)

	if err := s.feedbackRepo.SetPublished(ctx, id, published); err != nil {
		if errors.Is(err, feedbackRepo.ErrFeedbackNotFound) {
			s.logger.Warn("SetPublished: feedback id=%d not found", id)
			return ErrFeedbackNotFound
		}
		s.logger.Error("SetPublished: repository error for feedback id=%d: %v", id, err)
		return fmt.Errorf("%w: SetPublished - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetPublished: successfully updated feedback id=%d", id)
	return nil
}
