package domain

import "github.com/m04kA/NSS-BookingService/pkg/types"

// Default schedule values
const (
	DefaultOpenTime                = types.TimeString("09:00")
	DefaultCloseTime               = types.TimeString("18:00")
	DefaultSlotGranularityMinutes  = 30
	DefaultAdvanceBookingDays      = 0  // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 60 // 1 hour
)

// Business validation constants
const (
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 240

	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MinAdvanceBookingDays   = 0
	MaxAdvanceBookingDays   = 365
	MinBookingNoticeMinutes = 0
	MaxBookingNoticeMinutes = 10080 // 1 week

	MinFeedbackRating = 1
	MaxFeedbackRating = 5

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxFeedbackCommentLength    = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется при выборке записей для расчёта доступных слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
