package domain

import (
	"time"

	"github.com/m04kA/NSS-BookingService/pkg/types"
)

// SalonSchedule represents the salon's booking configuration:
// daily business hours, the slot grid granularity and booking policies.
// Hours and granularity are what the slot calculator consumes; the
// advance/notice policies apply only when creating an appointment.
type SalonSchedule struct {
	ID                     int64
	OpenTime               types.TimeString
	CloseTime              types.TimeString
	SlotGranularityMinutes int

	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WindowMinutes returns the length of the business day in minutes
func (s *SalonSchedule) WindowMinutes() int {
	open, err := s.OpenTime.Minutes()
	if err != nil {
		return 0
	}
	closeM, err := s.CloseTime.Minutes()
	if err != nil {
		return 0
	}
	return closeM - open
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance
// appointments can be made
func (s *SalonSchedule) HasAdvanceBookingLimit() bool {
	return s.AdvanceBookingDays > 0
}

// DefaultSchedule returns the schedule used when no row is configured yet
func DefaultSchedule() *SalonSchedule {
	return &SalonSchedule{
		OpenTime:                DefaultOpenTime,
		CloseTime:               DefaultCloseTime,
		SlotGranularityMinutes:  DefaultSlotGranularityMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}
