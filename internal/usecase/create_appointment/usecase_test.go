package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	storageCatalog "github.com/m04kA/NSS-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/NSS-BookingService/pkg/ptr"
)

type stubAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.ID = 100
	s.created = appt
	return appt, nil
}

func (s *stubAppointmentRepo) GetWithFilter(_ context.Context, _ domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.existing, nil
}

type stubCatalogRepo struct {
	service    *domain.CatalogService
	serviceErr error
	master     *domain.Master
	masterErr  error
}

func (s *stubCatalogRepo) GetServiceByID(_ context.Context, _ int64) (*domain.CatalogService, error) {
	return s.service, s.serviceErr
}

func (s *stubCatalogRepo) GetMasterByID(_ context.Context, _ int64) (*domain.Master, error) {
	return s.master, s.masterErr
}

type stubScheduleRepo struct {
	schedule *domain.SalonSchedule
	err      error
}

func (s *stubScheduleRepo) Get(_ context.Context) (*domain.SalonSchedule, error) {
	return s.schedule, s.err
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type spyNotifier struct {
	confirmed *domain.Appointment
}

func (s *spyNotifier) SendConfirmation(appt *domain.Appointment) {
	s.confirmed = appt
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	manicure := &domain.CatalogService{
		ID:              2,
		Name:            "Маникюр классический",
		Price:           1500,
		DurationMinutes: 60,
		Active:          true,
	}

	schedule := &domain.SalonSchedule{
		OpenTime:                "10:00",
		CloseTime:               "18:00",
		SlotGranularityMinutes:  30,
		MinBookingNoticeMinutes: 60,
	}

	newUC := func(apptRepo *stubAppointmentRepo, catRepo *stubCatalogRepo, notifier *spyNotifier) *UseCase {
		return NewUseCase(
			apptRepo,
			catRepo,
			&stubScheduleRepo{schedule: schedule},
			inlineTxManager{},
			notifier,
			fixedTimeProvider{now: now},
			nopLogger{},
		)
	}

	t.Run("creates confirmed appointment with service snapshot", func(t *testing.T) {
		apptRepo := &stubAppointmentRepo{}
		notifier := &spyNotifier{}
		uc := newUC(apptRepo, &stubCatalogRepo{service: manicure}, notifier)

		req := &Request{
			ClientID:    7,
			ServiceID:   2,
			Date:        date,
			StartTime:   "11:00",
			ClientName:  "Анна",
			ClientPhone: "+79990001122",
		}

		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		appt := resp.Appointment
		assert.Equal(t, int64(100), appt.ID)
		assert.NotEmpty(t, appt.Code)
		assert.Equal(t, domain.StatusConfirmed, appt.Status)
		assert.Equal(t, "Маникюр классический", appt.ServiceName)
		assert.Equal(t, float64(1500), appt.ServicePrice)
		assert.Equal(t, 60, appt.DurationMinutes)
		require.NotNil(t, appt.ClientPhone)
		assert.Equal(t, "+79990001122", *appt.ClientPhone)
		assert.Nil(t, appt.ClientEmail)

		// Подтверждение отправлено после сохранения
		assert.Same(t, appt, notifier.confirmed)
	})

	t.Run("snapshots master name when master selected", func(t *testing.T) {
		catRepo := &stubCatalogRepo{
			service: manicure,
			master:  &domain.Master{ID: 3, Name: "Мария", Active: true},
		}
		uc := newUC(&stubAppointmentRepo{}, catRepo, &spyNotifier{})

		req := &Request{
			ClientID:   7,
			ServiceID:  2,
			MasterID:   ptr.Ptr(int64(3)),
			Date:       date,
			StartTime:  "11:00",
			ClientName: "Анна",
		}

		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, resp.Appointment.MasterName)
		assert.Equal(t, "Мария", *resp.Appointment.MasterName)
	})

	t.Run("occupied slot is rejected", func(t *testing.T) {
		apptRepo := &stubAppointmentRepo{
			existing: []*domain.Appointment{
				{StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
			},
		}
		notifier := &spyNotifier{}
		uc := newUC(apptRepo, &stubCatalogRepo{service: manicure}, notifier)

		req := &Request{
			ClientID:   7,
			ServiceID:  2,
			Date:       date,
			StartTime:  "11:30",
			ClientName: "Анна",
		}

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Nil(t, apptRepo.created)
		assert.Nil(t, notifier.confirmed)
	})

	t.Run("unknown service", func(t *testing.T) {
		uc := newUC(&stubAppointmentRepo{}, &stubCatalogRepo{serviceErr: storageCatalog.ErrServiceNotFound}, &spyNotifier{})

		req := &Request{ClientID: 7, ServiceID: 99, Date: date, StartTime: "11:00", ClientName: "Анна"}
		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("inactive master", func(t *testing.T) {
		catRepo := &stubCatalogRepo{
			service: manicure,
			master:  &domain.Master{ID: 3, Name: "Мария", Active: false},
		}
		uc := newUC(&stubAppointmentRepo{}, catRepo, &spyNotifier{})

		req := &Request{
			ClientID:   7,
			ServiceID:  2,
			MasterID:   ptr.Ptr(int64(3)),
			Date:       date,
			StartTime:  "11:00",
			ClientName: "Анна",
		}

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrMasterNotActive)
	})

	t.Run("booking in the past", func(t *testing.T) {
		uc := newUC(&stubAppointmentRepo{}, &stubCatalogRepo{service: manicure}, &spyNotifier{})

		req := &Request{
			ClientID:   7,
			ServiceID:  2,
			Date:       now.AddDate(0, 0, -1),
			StartTime:  "11:00",
			ClientName: "Анна",
		}

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("same-day booking without enough notice", func(t *testing.T) {
		uc := newUC(&stubAppointmentRepo{}, &stubCatalogRepo{service: manicure}, &spyNotifier{})

		req := &Request{
			ClientID:   7,
			ServiceID:  2,
			Date:       now,
			StartTime:  "12:30",
			ClientName: "Анна",
		}

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrTooLateToBook)
	})
}
