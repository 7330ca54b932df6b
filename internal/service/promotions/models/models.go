package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

var (
	// ErrInvalidPromotion возвращается при некорректных параметрах акции
	ErrInvalidPromotion = errors.New("invalid promotion")
)

// CreatePromotionRequest запрос на создание акции
type CreatePromotionRequest struct {
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	DiscountPercent int     `json:"discountPercent"`
	ValidFrom       string  `json:"validFrom"`  // "2026-03-01"
	ValidUntil      string  `json:"validUntil"` // "2026-03-31"
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *CreatePromotionRequest) ToDomain() (*domain.Promotion, error) {
	if r.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidPromotion)
	}

	if r.DiscountPercent < 0 || r.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount percent must be between 0 and 100", ErrInvalidPromotion)
	}

	validFrom, err := time.Parse(domain.DateFormat, r.ValidFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: valid from: %v", ErrInvalidPromotion, err)
	}

	validUntil, err := time.Parse(domain.DateFormat, r.ValidUntil)
	if err != nil {
		return nil, fmt.Errorf("%w: valid until: %v", ErrInvalidPromotion, err)
	}

	if validUntil.Before(validFrom) {
		return nil, fmt.Errorf("%w: valid until must not be before valid from", ErrInvalidPromotion)
	}

	return &domain.Promotion{
		Title:           r.Title,
		Description:     r.Description,
		DiscountPercent: r.DiscountPercent,
		ValidFrom:       validFrom,
		ValidUntil:      validUntil,
		Active:          true,
	}, nil
}

// PromotionResponse акция салона
type PromotionResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	DiscountPercent int     `json:"discountPercent"`
	ValidFrom       string  `json:"validFrom"`
	ValidUntil      string  `json:"validUntil"`
	Active          bool    `json:"active"`
}

// PromotionListResponse список акций
type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

// FromDomainPromotion конвертирует domain модель в DTO
func FromDomainPromotion(p *domain.Promotion) *PromotionResponse {
	if p == nil {
		return nil
	}

	return &PromotionResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		DiscountPercent: p.DiscountPercent,
		ValidFrom:       p.ValidFrom.Format(domain.DateFormat),
		ValidUntil:      p.ValidUntil.Format(domain.DateFormat),
		Active:          p.Active,
	}
}

// FromDomainPromotionList конвертирует список domain моделей в DTO
func FromDomainPromotionList(promotions []*domain.Promotion) *PromotionListResponse {
	resp := &PromotionListResponse{
		Promotions: make([]PromotionResponse, 0, len(promotions)),
	}

	for _, p := range promotions {
		if pResp := FromDomainPromotion(p); pResp != nil {
			resp.Promotions = append(resp.Promotions, *pResp)
		}
	}

	return resp
}
