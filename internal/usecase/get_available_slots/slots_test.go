package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	"github.com/m04kA/NSS-BookingService/pkg/types"
)

func testSchedule(open, close types.TimeString, granularity int) *domain.SalonSchedule {
	return &domain.SalonSchedule{
		OpenTime:               open,
		CloseTime:              close,
		SlotGranularityMinutes: granularity,
	}
}

func activeAppointment(start types.TimeString, duration int) *domain.Appointment {
	return &domain.Appointment{
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}

func TestBuildCandidateSlots(t *testing.T) {
	t.Run("free day offers every tick where the service fits", func(t *testing.T) {
		schedule := testSchedule("10:00", "12:00", 30)

		slots := buildCandidateSlots(schedule, 60, map[types.TimeString]struct{}{})

		// 10:00, 10:30, 11:00 - слот 11:30+60 закончился бы в 12:30, выпадает
		require.Len(t, slots, 3)
		assert.Equal(t, types.TimeString("10:00"), slots[0].StartTime)
		assert.Equal(t, types.TimeString("10:30"), slots[1].StartTime)
		assert.Equal(t, types.TimeString("11:00"), slots[2].StartTime)
		for _, s := range slots {
			assert.True(t, s.Available, "slot %s", s.StartTime)
		}
	})

	t.Run("slot ending exactly at close is offered", func(t *testing.T) {
		schedule := testSchedule("10:00", "12:00", 30)

		slots := buildCandidateSlots(schedule, 120, map[types.TimeString]struct{}{})

		require.Len(t, slots, 1)
		assert.Equal(t, types.TimeString("10:00"), slots[0].StartTime)
		assert.True(t, slots[0].Available)
	})

	t.Run("occupied tick blocks every slot that touches it", func(t *testing.T) {
		schedule := testSchedule("10:00", "13:00", 30)
		occupied := map[types.TimeString]struct{}{
			"11:00": {},
			"11:30": {},
		}

		slots := buildCandidateSlots(schedule, 60, occupied)

		byStart := make(map[types.TimeString]bool, len(slots))
		for _, s := range slots {
			byStart[s.StartTime] = s.Available
		}

		assert.True(t, byStart["10:00"])
		// 10:30 задевает занятый тик 11:00
		assert.False(t, byStart["10:30"])
		assert.False(t, byStart["11:00"])
		assert.False(t, byStart["11:30"])
		assert.True(t, byStart["12:00"])
	})

	t.Run("duration not multiple of granularity still checks the last tick", func(t *testing.T) {
		schedule := testSchedule("10:00", "12:00", 30)
		occupied := map[types.TimeString]struct{}{
			"10:30": {},
		}

		slots := buildCandidateSlots(schedule, 45, occupied)

		byStart := make(map[types.TimeString]bool, len(slots))
		for _, s := range slots {
			byStart[s.StartTime] = s.Available
		}

		// Услуга 10:00-10:45 перекрывает тик 10:30 неполным шагом
		require.Len(t, slots, 3)
		assert.False(t, byStart["10:00"])
		assert.False(t, byStart["10:30"])
		assert.True(t, byStart["11:00"])
	})

	t.Run("service longer than business day gives no slots", func(t *testing.T) {
		schedule := testSchedule("10:00", "12:00", 30)

		slots := buildCandidateSlots(schedule, 180, map[types.TimeString]struct{}{})

		assert.Empty(t, slots)
	})

	t.Run("granularity defines the grid step", func(t *testing.T) {
		schedule := testSchedule("09:00", "10:00", 15)

		slots := buildCandidateSlots(schedule, 15, map[types.TimeString]struct{}{})

		require.Len(t, slots, 4)
		assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
		assert.Equal(t, types.TimeString("09:15"), slots[1].StartTime)
		assert.Equal(t, types.TimeString("09:30"), slots[2].StartTime)
		assert.Equal(t, types.TimeString("09:45"), slots[3].StartTime)
	})

	t.Run("non-positive granularity gives no slots", func(t *testing.T) {
		schedule := testSchedule("10:00", "18:00", 0)

		slots := buildCandidateSlots(schedule, 60, map[types.TimeString]struct{}{})

		assert.Empty(t, slots)
	})

	t.Run("full pipeline: appointment blocks its slots only", func(t *testing.T) {
		schedule := testSchedule("09:00", "12:00", 30)
		appts := []*domain.Appointment{activeAppointment("10:00", 60)}

		occupied := domain.OccupiedTicks(appts, schedule.SlotGranularityMinutes)
		slots := buildCandidateSlots(schedule, 30, occupied)

		require.Len(t, slots, 6)
		expected := map[types.TimeString]bool{
			"09:00": true,
			"09:30": true,
			"10:00": false,
			"10:30": false,
			"11:00": true,
			"11:30": true,
		}
		for _, s := range slots {
			assert.Equal(t, expected[s.StartTime], s.Available, "slot %s", s.StartTime)
		}
	})
}
