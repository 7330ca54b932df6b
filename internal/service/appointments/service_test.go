package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/NSS-BookingService/internal/service/appointments/models"
)

type stubRepo struct {
	appt    *domain.Appointment
	getErr  error
	byCli   []*domain.Appointment
	listErr error

	cancelledID     int64
	cancelledStatus domain.AppointmentStatus
	cancelledReason string
	updatedStatus   domain.AppointmentStatus
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return s.appt, s.getErr
}

func (s *stubRepo) GetByClientID(_ context.Context, _ int64, _ *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return s.byCli, s.listErr
}

func (s *stubRepo) GetWithFilter(_ context.Context, _ domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.byCli, s.listErr
}

func (s *stubRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	s.updatedStatus = status
	return nil
}

func (s *stubRepo) Cancel(_ context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	s.cancelledID = id
	s.cancelledStatus = status
	s.cancelledReason = reason
	return nil
}

type spyNotifier struct {
	appt   *domain.Appointment
	reason string
}

func (s *spyNotifier) SendCancellation(appt *domain.Appointment, reason string) {
	s.appt = appt
	s.reason = reason
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedAppointment(clientID int64) *domain.Appointment {
	return &domain.Appointment{
		ID:       10,
		ClientID: clientID,
		Status:   domain.StatusConfirmed,
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("client sees own appointment", func(t *testing.T) {
		repo := &stubRepo{appt: confirmedAppointment(7)}
		svc := NewService(repo, &spyNotifier{}, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 10, 7, false)

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
	})

	t.Run("client cannot see foreign appointment", func(t *testing.T) {
		repo := &stubRepo{appt: confirmedAppointment(7)}
		svc := NewService(repo, &spyNotifier{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 10, 8, false)

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin sees any appointment", func(t *testing.T) {
		repo := &stubRepo{appt: confirmedAppointment(7)}
		svc := NewService(repo, &spyNotifier{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 10, 0, true)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
		svc := NewService(repo, &spyNotifier{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 10, 7, false)

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("client cancels own appointment", func(t *testing.T) {
		repo := &stubRepo{appt: confirmedAppointment(7)}
		notifier := &spyNotifier{}
		svc := NewService(repo, notifier, nopLogger{})

		err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
			ClientID:           7,
			CancellationReason: "не смогу прийти",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByClient, repo.cancelledStatus)
		assert.Equal(t, "не смогу прийти", repo.cancelledReason)

		// Уведомление уходит уже с новым статусом
		require.NotNil(t, notifier.appt)
		assert.Equal(t, domain.StatusCancelledByClient, notifier.appt.Status)
		assert.Equal(t, "не смогу прийти", notifier.reason)
	})

	t.Run("client cannot cancel foreign appointment", func(t *testing.T) {
		repo := &stubRepo{appt: confirmedAppointment(7)}
		svc := NewService(repo, &spyNotifier{}, nopLogger{})

		err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{ClientID: 8})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin cancellation sets salon status", func(t *testing.T) {
		repo := &stubRepo{appt: confirmedAppointment(7)}
		svc := NewService(repo, &spyNotifier{}, nopLogger{})

		err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
			ByAdmin:            true,
			CancellationReason: "мастер заболел",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledBySalon, repo.cancelledStatus)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		appt := confirmedAppointment(7)
		appt.Status = domain.StatusCompleted
		repo := &stubRepo{appt: appt}
		notifier := &spyNotifier{}
		svc := NewService(repo, notifier, nopLogger{})

		err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{ClientID: 7})

		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.Nil(t, notifier.appt)
	})

	t.Run("already cancelled appointment cannot be cancelled again", func(t *testing.T) {
		appt := confirmedAppointment(7)
		appt.Status = domain.StatusCancelledByClient
		repo := &stubRepo{appt: appt}
		svc := NewService(repo, &spyNotifier{}, nopLogger{})

		err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{ClientID: 7})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		repo := &stubRepo{appt: confirmedAppointment(7)}
		svc := NewService(repo, &spyNotifier{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "in_progress"})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, repo.updatedStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := &stubRepo{appt: confirmedAppointment(7)}
		svc := NewService(repo, &spyNotifier{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "teleported"})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
		svc := NewService(repo, &spyNotifier{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "completed"})

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
