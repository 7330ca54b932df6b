package models

import (
	"errors"
	"fmt"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	"github.com/m04kA/NSS-BookingService/pkg/types"
)

var (
	// ErrInvalidSchedule возвращается при некорректных параметрах расписания
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// ScheduleResponse текущее расписание салона
type ScheduleResponse struct {
	OpenTime                string `json:"openTime"`  // "09:00"
	CloseTime               string `json:"closeTime"` // "18:00"
	SlotGranularityMinutes  int    `json:"slotGranularityMinutes"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
}

// UpdateScheduleRequest запрос на обновление расписания салона
type UpdateScheduleRequest struct {
	OpenTime                string `json:"openTime"`
	CloseTime               string `json:"closeTime"`
	SlotGranularityMinutes  int    `json:"slotGranularityMinutes"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *UpdateScheduleRequest) ToDomain() (*domain.SalonSchedule, error) {
	openTime, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: open time: %v", ErrInvalidSchedule, err)
	}

	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: close time: %v", ErrInvalidSchedule, err)
	}

	if !openTime.IsBefore(closeTime) {
		return nil, fmt.Errorf("%w: open time must be before close time", ErrInvalidSchedule)
	}

	if r.SlotGranularityMinutes < domain.MinSlotGranularityMinutes || r.SlotGranularityMinutes > domain.MaxSlotGranularityMinutes {
		return nil, fmt.Errorf("%w: slot granularity must be between %d and %d minutes",
			ErrInvalidSchedule, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
	}

	if r.AdvanceBookingDays < domain.MinAdvanceBookingDays || r.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return nil, fmt.Errorf("%w: advance booking days must be between %d and %d",
			ErrInvalidSchedule, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if r.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || r.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return nil, fmt.Errorf("%w: min booking notice must be between %d and %d minutes",
			ErrInvalidSchedule, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}

	return &domain.SalonSchedule{
		OpenTime:                openTime,
		CloseTime:               closeTime,
		SlotGranularityMinutes:  r.SlotGranularityMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}, nil
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.SalonSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	return &ScheduleResponse{
		OpenTime:                s.OpenTime.String(),
		CloseTime:               s.CloseTime.String(),
		SlotGranularityMinutes:  s.SlotGranularityMinutes,
		AdvanceBookingDays:      s.AdvanceBookingDays,
		MinBookingNoticeMinutes: s.MinBookingNoticeMinutes,
	}
}
