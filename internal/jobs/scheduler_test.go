package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

type stubAppointmentRepo struct {
	appts     []*domain.Appointment
	pastIDs   []int64
	gotFilter domain.SalonAppointmentsFilter

	updatedIDs    []int64
	updatedStatus domain.AppointmentStatus
}

func (s *stubAppointmentRepo) GetActiveIDsPastEndTime(_ context.Context, _ time.Time) ([]int64, error) {
	return s.pastIDs, nil
}

func (s *stubAppointmentRepo) UpdateStatuses(_ context.Context, ids []int64, status domain.AppointmentStatus) error {
	s.updatedIDs = ids
	s.updatedStatus = status
	return nil
}

func (s *stubAppointmentRepo) GetWithFilter(_ context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	s.gotFilter = filter
	return s.appts, nil
}

type spyNotifier struct {
	reminded []*domain.Appointment
}

func (s *spyNotifier) SendReminder(appt *domain.Appointment) {
	s.reminded = append(s.reminded, appt)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestScheduler_SendReminders(t *testing.T) {
	t.Run("filters by tomorrow at midnight", func(t *testing.T) {
		repo := &stubAppointmentRepo{}
		s := NewScheduler(repo, &spyNotifier{}, nopLogger{})

		before := time.Now()
		require.NoError(t, s.SendReminders(context.Background()))
		after := time.Now()

		require.NotNil(t, repo.gotFilter.StartDate)
		require.NotNil(t, repo.gotFilter.EndDate)

		got := *repo.gotFilter.StartDate
		assert.Equal(t, got, *repo.gotFilter.EndDate)

		// Дата записи в БД полуночная, фильтр с временем суток не совпал бы ни с одной строкой
		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, 0, got.Minute())
		assert.Equal(t, 0, got.Second())
		assert.Equal(t, 0, got.Nanosecond())

		wantMin := time.Date(before.Year(), before.Month(), before.Day(), 0, 0, 0, 0, before.Location()).AddDate(0, 0, 1)
		wantMax := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, after.Location()).AddDate(0, 0, 1)
		assert.True(t, !got.Before(wantMin) && !got.After(wantMax), "expected tomorrow's date, got %v", got)
	})

	t.Run("reminds only active appointments", func(t *testing.T) {
		active := &domain.Appointment{ID: 1, Status: domain.StatusConfirmed}
		cancelled := &domain.Appointment{ID: 2, Status: domain.StatusCancelledByClient}
		repo := &stubAppointmentRepo{appts: []*domain.Appointment{active, cancelled}}
		notifier := &spyNotifier{}
		s := NewScheduler(repo, notifier, nopLogger{})

		require.NoError(t, s.SendReminders(context.Background()))

		require.Len(t, notifier.reminded, 1)
		assert.Same(t, active, notifier.reminded[0])
	})
}

func TestScheduler_CompleteFinishedAppointments(t *testing.T) {
	t.Run("marks past appointments completed", func(t *testing.T) {
		repo := &stubAppointmentRepo{pastIDs: []int64{3, 5}}
		s := NewScheduler(repo, &spyNotifier{}, nopLogger{})

		require.NoError(t, s.CompleteFinishedAppointments(context.Background()))

		assert.Equal(t, []int64{3, 5}, repo.updatedIDs)
		assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
	})

	t.Run("nothing to complete", func(t *testing.T) {
		repo := &stubAppointmentRepo{}
		s := NewScheduler(repo, &spyNotifier{}, nopLogger{})

		require.NoError(t, s.CompleteFinishedAppointments(context.Background()))

		assert.Empty(t, repo.updatedIDs)
	})
}
