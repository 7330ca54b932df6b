package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NSS-BookingService/pkg/types"
)

func validUpdateRequest() *UpdateScheduleRequest {
	return &UpdateScheduleRequest{
		OpenTime:                "10:00",
		CloseTime:               "20:00",
		SlotGranularityMinutes:  30,
		AdvanceBookingDays:      14,
		MinBookingNoticeMinutes: 60,
	}
}

func TestUpdateScheduleRequest_ToDomain(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		schedule, err := validUpdateRequest().ToDomain()

		require.NoError(t, err)
		assert.Equal(t, types.TimeString("10:00"), schedule.OpenTime)
		assert.Equal(t, types.TimeString("20:00"), schedule.CloseTime)
		assert.Equal(t, 30, schedule.SlotGranularityMinutes)
	})

	t.Run("malformed open time", func(t *testing.T) {
		req := validUpdateRequest()
		req.OpenTime = "10"

		_, err := req.ToDomain()

		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("open time after close time", func(t *testing.T) {
		req := validUpdateRequest()
		req.OpenTime = "20:00"
		req.CloseTime = "10:00"

		_, err := req.ToDomain()

		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("open time equal to close time", func(t *testing.T) {
		req := validUpdateRequest()
		req.CloseTime = req.OpenTime

		_, err := req.ToDomain()

		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("granularity out of range", func(t *testing.T) {
		req := validUpdateRequest()
		req.SlotGranularityMinutes = 3

		_, err := req.ToDomain()
		assert.ErrorIs(t, err, ErrInvalidSchedule)

		req.SlotGranularityMinutes = 300
		_, err = req.ToDomain()
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("advance booking days out of range", func(t *testing.T) {
		req := validUpdateRequest()
		req.AdvanceBookingDays = 400

		_, err := req.ToDomain()

		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("booking notice out of range", func(t *testing.T) {
		req := validUpdateRequest()
		req.MinBookingNoticeMinutes = -1

		_, err := req.ToDomain()

		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})
}
