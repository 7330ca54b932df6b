package domain

import "time"

// CatalogService represents a service from the salon's price list
type CatalogService struct {
	ID              int64
	Name            string
	Description     *string
	Category        string // manicure, pedicure, design, care
	Price           float64
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Master represents a salon staff member clients can be booked with
type Master struct {
	ID             int64
	Name           string
	Specialization *string
	PhotoURL       *string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
