package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/NSS-BookingService/pkg/types"
)

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	gotFilter    domain.SalonAppointmentsFilter
}

func (s *stubAppointmentRepo) GetWithFilter(_ context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	s.gotFilter = filter
	return s.appointments, s.err
}

type stubCatalogRepo struct {
	service *domain.CatalogService
	err     error
}

func (s *stubCatalogRepo) GetServiceByID(_ context.Context, _ int64) (*domain.CatalogService, error) {
	return s.service, s.err
}

type stubScheduleRepo struct {
	schedule *domain.SalonSchedule
	err      error
}

func (s *stubScheduleRepo) Get(_ context.Context) (*domain.SalonSchedule, error) {
	return s.schedule, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(a *stubAppointmentRepo, c *stubCatalogRepo, s *stubScheduleRepo) *UseCase {
	return NewUseCase(a, c, s, nopLogger{})
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	manicure := &domain.CatalogService{
		ID:              1,
		Name:            "Маникюр классический",
		DurationMinutes: 60,
		Active:          true,
	}

	schedule := &domain.SalonSchedule{
		OpenTime:               "10:00",
		CloseTime:              "13:00",
		SlotGranularityMinutes: 30,
	}

	t.Run("free day returns full grid of available slots", func(t *testing.T) {
		uc := newTestUseCase(
			&stubAppointmentRepo{},
			&stubCatalogRepo{service: manicure},
			&stubScheduleRepo{schedule: schedule},
		)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})

		require.NoError(t, err)
		assert.Equal(t, date, resp.Date)
		assert.Equal(t, int64(1), resp.ServiceID)
		assert.Equal(t, 60, resp.DurationMinutes)

		// 10:00..12:00 - слот 12:30 не успевает до 13:00
		require.Len(t, resp.Slots, 5)
		for _, slot := range resp.Slots {
			assert.True(t, slot.Available, "slot %s", slot.StartTime)
		}
	})

	t.Run("existing appointment makes overlapping slots unavailable", func(t *testing.T) {
		appts := []*domain.Appointment{
			{
				StartTime:       "11:00",
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
			},
		}

		uc := newTestUseCase(
			&stubAppointmentRepo{appointments: appts},
			&stubCatalogRepo{service: manicure},
			&stubScheduleRepo{schedule: schedule},
		)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})

		require.NoError(t, err)
		byStart := make(map[types.TimeString]bool)
		for _, slot := range resp.Slots {
			byStart[slot.StartTime] = slot.Available
		}

		assert.True(t, byStart["10:00"])
		assert.False(t, byStart["10:30"])
		assert.False(t, byStart["11:00"])
		assert.False(t, byStart["11:30"])
		assert.True(t, byStart["12:00"])
	})

	t.Run("filter restricts appointments to the requested date", func(t *testing.T) {
		apptRepo := &stubAppointmentRepo{}
		uc := newTestUseCase(
			apptRepo,
			&stubCatalogRepo{service: manicure},
			&stubScheduleRepo{schedule: schedule},
		)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})

		require.NoError(t, err)
		require.NotNil(t, apptRepo.gotFilter.StartDate)
		require.NotNil(t, apptRepo.gotFilter.EndDate)
		assert.Equal(t, date, *apptRepo.gotFilter.StartDate)
		assert.Equal(t, date, *apptRepo.gotFilter.EndDate)
		assert.False(t, apptRepo.gotFilter.IncludeInactive)
	})

	t.Run("unknown service", func(t *testing.T) {
		uc := newTestUseCase(
			&stubAppointmentRepo{},
			&stubCatalogRepo{err: catalogRepo.ErrServiceNotFound},
			&stubScheduleRepo{schedule: schedule},
		)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: date})

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("inactive service", func(t *testing.T) {
		inactive := &domain.CatalogService{ID: 2, DurationMinutes: 60, Active: false}
		uc := newTestUseCase(
			&stubAppointmentRepo{},
			&stubCatalogRepo{service: inactive},
			&stubScheduleRepo{schedule: schedule},
		)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 2, Date: date})

		assert.ErrorIs(t, err, ErrServiceNotActive)
	})

	t.Run("missing schedule falls back to defaults", func(t *testing.T) {
		uc := newTestUseCase(
			&stubAppointmentRepo{},
			&stubCatalogRepo{service: manicure},
			&stubScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})

		require.NoError(t, err)
		require.NotEmpty(t, resp.Slots)
		assert.Equal(t, domain.DefaultOpenTime, resp.Slots[0].StartTime)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(&stubAppointmentRepo{}, &stubCatalogRepo{}, &stubScheduleRepo{})

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
