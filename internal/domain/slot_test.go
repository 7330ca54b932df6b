package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/NSS-BookingService/pkg/types"
)

func activeAppointment(start types.TimeString, duration int) *Appointment {
	return &Appointment{
		StartTime:       start,
		DurationMinutes: duration,
		Status:          StatusConfirmed,
	}
}

func TestOccupiedTicks(t *testing.T) {
	t.Run("60-minute appointment marks two 30-minute ticks", func(t *testing.T) {
		appts := []*Appointment{activeAppointment("10:00", 60)}

		occupied := OccupiedTicks(appts, 30)

		assert.Len(t, occupied, 2)
		assert.Contains(t, occupied, types.TimeString("10:00"))
		assert.Contains(t, occupied, types.TimeString("10:30"))
		assert.NotContains(t, occupied, types.TimeString("11:00"))
	})

	t.Run("cancelled and no-show appointments are ignored", func(t *testing.T) {
		appts := []*Appointment{
			{StartTime: "10:00", DurationMinutes: 60, Status: StatusCancelledByClient},
			{StartTime: "12:00", DurationMinutes: 60, Status: StatusCancelledBySalon},
			{StartTime: "14:00", DurationMinutes: 60, Status: StatusNoShow},
		}

		occupied := OccupiedTicks(appts, 30)

		assert.Empty(t, occupied)
	})

	t.Run("overlapping appointments merge into one set", func(t *testing.T) {
		appts := []*Appointment{
			activeAppointment("10:00", 60),
			activeAppointment("10:30", 60),
		}

		occupied := OccupiedTicks(appts, 30)

		assert.Len(t, occupied, 3)
		assert.Contains(t, occupied, types.TimeString("10:00"))
		assert.Contains(t, occupied, types.TimeString("10:30"))
		assert.Contains(t, occupied, types.TimeString("11:00"))
	})

	t.Run("off-grid start marks off-grid ticks", func(t *testing.T) {
		// Запись с началом 10:15 шагает по тикам 10:15, 10:45 -
		// сеточные ключи 10:00/10:30 остаются свободными
		appts := []*Appointment{activeAppointment("10:15", 60)}

		occupied := OccupiedTicks(appts, 30)

		assert.Len(t, occupied, 2)
		assert.Contains(t, occupied, types.TimeString("10:15"))
		assert.Contains(t, occupied, types.TimeString("10:45"))
		assert.NotContains(t, occupied, types.TimeString("10:00"))
		assert.NotContains(t, occupied, types.TimeString("10:30"))
	})

	t.Run("appointment past midnight marks ticks until end of day", func(t *testing.T) {
		appts := []*Appointment{activeAppointment("23:30", 120)}

		occupied := OccupiedTicks(appts, 30)

		assert.Contains(t, occupied, types.TimeString("23:30"))
		assert.NotContains(t, occupied, types.TimeString("00:00"))
	})

	t.Run("empty input gives empty set", func(t *testing.T) {
		occupied := OccupiedTicks(nil, 30)

		assert.Empty(t, occupied)
	})
}
