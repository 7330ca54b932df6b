package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	"github.com/m04kA/NSS-BookingService/pkg/ptr"
	"github.com/m04kA/NSS-BookingService/pkg/types"
)

func testSchedule() *domain.SalonSchedule {
	return &domain.SalonSchedule{
		OpenTime:                "10:00",
		CloseTime:               "18:00",
		SlotGranularityMinutes:  30,
		AdvanceBookingDays:      14,
		MinBookingNoticeMinutes: 60,
	}
}

func validRequest() *Request {
	return &Request{
		ClientID:   1,
		ServiceID:  2,
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		ClientName: "Анна",
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, validateRequest(validRequest()))
	})

	t.Run("non-positive client id", func(t *testing.T) {
		req := validRequest()
		req.ClientID = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("non-positive service id", func(t *testing.T) {
		req := validRequest()
		req.ServiceID = -1
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("non-positive master id", func(t *testing.T) {
		req := validRequest()
		req.MasterID = ptr.Ptr(int64(0))
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing date", func(t *testing.T) {
		req := validRequest()
		req.Date = time.Time{}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("malformed start time", func(t *testing.T) {
		req := validRequest()
		req.StartTime = types.TimeString("10-00")
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing client name", func(t *testing.T) {
		req := validRequest()
		req.ClientName = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("notes too long", func(t *testing.T) {
		req := validRequest()
		notes := make([]byte, domain.MaxNotesLength+1)
		for i := range notes {
			notes[i] = 'x'
		}
		req.Notes = string(notes)
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	schedule := testSchedule()

	t.Run("today is allowed", func(t *testing.T) {
		assert.NoError(t, validateDate(now, now, schedule))
	})

	t.Run("yesterday is rejected", func(t *testing.T) {
		err := validateDate(now.AddDate(0, 0, -1), now, schedule)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("last day of booking horizon is allowed", func(t *testing.T) {
		assert.NoError(t, validateDate(now.AddDate(0, 0, 14), now, schedule))
	})

	t.Run("beyond booking horizon is rejected", func(t *testing.T) {
		err := validateDate(now.AddDate(0, 0, 15), now, schedule)
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("no horizon limit allows any future date", func(t *testing.T) {
		unlimited := testSchedule()
		unlimited.AdvanceBookingDays = 0
		assert.NoError(t, validateDate(now.AddDate(1, 0, 0), now, unlimited))
	})
}

func TestValidateBookingNotice(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	schedule := testSchedule() // минимум 60 минут до начала

	t.Run("future day skips the notice check", func(t *testing.T) {
		tomorrow := now.AddDate(0, 0, 1)
		assert.NoError(t, validateBookingNotice(tomorrow, "12:30", now, schedule))
	})

	t.Run("same day with enough notice", func(t *testing.T) {
		assert.NoError(t, validateBookingNotice(now, "13:00", now, schedule))
	})

	t.Run("same day too close to start", func(t *testing.T) {
		err := validateBookingNotice(now, "12:30", now, schedule)
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("same day start already passed", func(t *testing.T) {
		err := validateBookingNotice(now, "11:00", now, schedule)
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})
}

func TestCheckSlotAvailable(t *testing.T) {
	schedule := testSchedule()

	t.Run("free slot on the grid", func(t *testing.T) {
		assert.NoError(t, checkSlotAvailable(schedule, 60, nil, "10:00"))
	})

	t.Run("slot ending exactly at close", func(t *testing.T) {
		assert.NoError(t, checkSlotAvailable(schedule, 60, nil, "17:00"))
	})

	t.Run("off-grid start time", func(t *testing.T) {
		err := checkSlotAvailable(schedule, 60, nil, "10:15")
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("start before opening", func(t *testing.T) {
		err := checkSlotAvailable(schedule, 60, nil, "09:00")
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("service does not fit before close", func(t *testing.T) {
		err := checkSlotAvailable(schedule, 60, nil, "17:30")
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("slot taken by existing appointment", func(t *testing.T) {
		appts := []*domain.Appointment{
			{StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		}

		err := checkSlotAvailable(schedule, 60, appts, "11:30")
		assert.ErrorIs(t, err, ErrSlotNotAvailable)

		err = checkSlotAvailable(schedule, 60, appts, "10:30")
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("45-minute service overlaps the last tick with a partial step", func(t *testing.T) {
		appts := []*domain.Appointment{
			{StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusConfirmed},
		}

		// Услуга 10:00-10:45 задевает занятый тик 10:30
		err := checkSlotAvailable(schedule, 45, appts, "10:00")
		assert.ErrorIs(t, err, ErrSlotNotAvailable)

		assert.NoError(t, checkSlotAvailable(schedule, 45, appts, "11:00"))
	})

	t.Run("cancelled appointment frees the slot", func(t *testing.T) {
		appts := []*domain.Appointment{
			{StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusCancelledByClient},
		}

		assert.NoError(t, checkSlotAvailable(schedule, 60, appts, "11:00"))
	})

	t.Run("adjacent appointments do not conflict", func(t *testing.T) {
		appts := []*domain.Appointment{
			{StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		}

		assert.NoError(t, checkSlotAvailable(schedule, 60, appts, "12:00"))
		assert.NoError(t, checkSlotAvailable(schedule, 60, appts, "10:00"))
	})
}
