package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

var (
	// ErrInvalidFeedback возвращается при некорректных параметрах отзыва
	ErrInvalidFeedback = errors.New("invalid feedback")
)

// CreateFeedbackRequest запрос на создание отзыва
type CreateFeedbackRequest struct {
	ClientID   *int64  `json:"clientId,omitempty"` // nil = анонимный отзыв с сайта
	ClientName string  `json:"clientName"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment,omitempty"`
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *CreateFeedbackRequest) ToDomain() (*domain.Feedback, error) {
	if r.ClientName == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidFeedback)
	}

	if r.Rating < domain.MinFeedbackRating || r.Rating > domain.MaxFeedbackRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidFeedback, domain.MinFeedbackRating, domain.MaxFeedbackRating)
	}

	if r.Comment != nil && len(*r.Comment) > domain.MaxFeedbackCommentLength {
		return nil, fmt.Errorf("%w: comment too long", ErrInvalidFeedback)
	}

	return &domain.Feedback{
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Published:  false,
	}, nil
}

// PublishFeedbackRequest запрос на публикацию или скрытие отзыва
type PublishFeedbackRequest struct {
	Published bool `json:"published"`
}

// FeedbackResponse отзыв клиента
type FeedbackResponse struct {
	ID         int64     `json:"id"`
	ClientName string    `json:"clientName"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FeedbackListResponse список отзывов
type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
}

// FromDomainFeedback конвертирует domain модель в DTO
func FromDomainFeedback(f *domain.Feedback) *FeedbackResponse {
	if f == nil {
		return nil
	}

	return &FeedbackResponse{
		ID:         f.ID,
		ClientName: f.ClientName,
		Rating:     f.Rating,
		Comment:    f.Comment,
		Published:  f.Published,
		CreatedAt:  f.CreatedAt,
	}
}

// FromDomainFeedbackList конвертирует список domain моделей в DTO
func FromDomainFeedbackList(feedback []*domain.Feedback) *FeedbackListResponse {
	resp := &FeedbackListResponse{
		Feedback: make([]FeedbackResponse, 0, len(feedback)),
	}

	for _, f := range feedback {
		if fResp := FromDomainFeedback(f); fResp != nil {
			resp.Feedback = append(resp.Feedback, *fResp)
		}
	}

	return resp
}
