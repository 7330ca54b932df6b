package domain

import "time"

// Feedback represents a client review of the salon
type Feedback struct {
	ID         int64
	ClientID   *int64 // nil = анонимный отзыв с сайта
	ClientName string
	Rating     int // 1..5
	Comment    *string
	Published  bool // показывается ли на сайте (модерация администратором)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Admin represents a dashboard administrator account
type Admin struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
