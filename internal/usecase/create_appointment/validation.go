package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	"github.com/m04kA/NSS-BookingService/pkg/types"
)

func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
	}

	if req.MasterID != nil && *req.MasterID <= 0 {
		return fmt.Errorf("%w: master id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	if req.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом и не выходит за горизонт бронирования
func validateDate(date, now time.Time, schedule *domain.SalonSchedule) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	if schedule.HasAdvanceBookingLimit() {
		horizon := startOfDay(now).AddDate(0, 0, schedule.AdvanceBookingDays)
		if startOfDay(date).After(horizon) {
			return ErrDateTooFarInFuture
		}
	}

	return nil
}

// validateBookingNotice проверяет минимальное время до начала записи.
// Для записей на будущие дни проверка не применяется.
func validateBookingNotice(date time.Time, startTime types.TimeString, now time.Time, schedule *domain.SalonSchedule) error {
	if !isSameDay(date, now) {
		return nil
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	if startMinutes-nowMinutes < schedule.MinBookingNoticeMinutes {
		return ErrTooLateToBook
	}

	return nil
}

// checkSlotAvailable проверяет, что выбранное время попадает в сетку слотов салона
// и что слот свободен с учётом уже существующих записей.
func checkSlotAvailable(schedule *domain.SalonSchedule, serviceDurationMinutes int, appointments []*domain.Appointment, startTime types.TimeString) error {
	if schedule.SlotGranularityMinutes <= 0 {
		return ErrInvalidTimeSlot
	}

	// Занятость считается тем же кодом, что и выдача свободных слотов
	occupied := domain.OccupiedTicks(appointments, schedule.SlotGranularityMinutes)

	tick := schedule.OpenTime
	for tick.IsBefore(schedule.CloseTime) {
		if tick == startTime {
			slotEnd, err := tick.AddMinutes(serviceDurationMinutes)
			if err != nil || slotEnd.IsAfter(schedule.CloseTime) {
				return ErrInvalidTimeSlot
			}

			current := tick
			for current.IsBefore(slotEnd) {
				if _, busy := occupied[current]; busy {
					return ErrSlotNotAvailable
				}

				next, stepErr := current.AddMinutes(schedule.SlotGranularityMinutes)
				if stepErr != nil {
					break
				}
				current = next
			}

			return nil
		}

		next, err := tick.AddMinutes(schedule.SlotGranularityMinutes)
		if err != nil {
			break
		}
		tick = next
	}

	return ErrInvalidTimeSlot
}

func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func isDateInPast(date, now time.Time) bool {
	return startOfDay(date).Before(startOfDay(now))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
