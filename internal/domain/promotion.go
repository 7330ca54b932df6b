package domain

import "time"

// Promotion represents a salon marketing promotion shown on the site
type Promotion struct {
	ID              int64
	Title           string
	Description     *string
	DiscountPercent int // 0 = информационная акция без скидки
	ValidFrom       time.Time
	ValidUntil      time.Time
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsCurrent returns true if the promotion is active and the date falls
// inside its validity period
func (p *Promotion) IsCurrent(date time.Time) bool {
	if !p.Active {
		return false
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return !day.Before(p.ValidFrom) && !day.After(p.ValidUntil)
}
