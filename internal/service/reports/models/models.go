package models

// ReportResponse сводный отчёт салона за период
type ReportResponse struct {
	From string `json:"from"` // "2026-03-01"
	To   string `json:"to"`   // "2026-03-31"

	TotalAppointments int            `json:"totalAppointments"`
	ByStatus          map[string]int `json:"byStatus"`

	CompletedRevenue float64 `json:"completedRevenue"`

	AverageRating float64 `json:"averageRating"`
	FeedbackCount int     `json:"feedbackCount"`
}
