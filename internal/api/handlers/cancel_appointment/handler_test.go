package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NSS-BookingService/internal/api/middleware"
	"github.com/m04kA/NSS-BookingService/internal/service/appointments"
	"github.com/m04kA/NSS-BookingService/internal/service/appointments/models"
)

type stubAppointmentService struct {
	err error

	gotAppointmentID int64
	gotReq           *models.CancelAppointmentRequest
}

func (s *stubAppointmentService) Cancel(_ context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.gotAppointmentID = appointmentID
	s.gotReq = req
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func clientRequest(userID, appointmentID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+appointmentID+"/cancel", strings.NewReader(body))
	req.Header.Set("X-User-ID", userID)
	return mux.SetURLVars(req, map[string]string{"appointmentId": appointmentID})
}

func adminRequest(appointmentID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/appointments/"+appointmentID+"/cancel", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"appointmentId": appointmentID})
}

func TestHandler_Handle(t *testing.T) {
	t.Run("client cancel passes client ID to service", func(t *testing.T) {
		svc := &stubAppointmentService{}
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		// X-User-ID кладется в контекст через middleware
		middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, clientRequest("42", "7", `{"cancellationReason":"не смогу прийти"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.gotReq)
		assert.Equal(t, int64(7), svc.gotAppointmentID)
		assert.Equal(t, int64(42), svc.gotReq.ClientID)
		assert.False(t, svc.gotReq.ByAdmin)
		assert.Equal(t, "не смогу прийти", svc.gotReq.CancellationReason)
	})

	t.Run("missing user returns 401", func(t *testing.T) {
		svc := &stubAppointmentService{}
		h := NewHandler(svc, nopLogger{})

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/7/cancel", nil)
		rec := httptest.NewRecorder()
		h.Handle(rec, mux.SetURLVars(req, map[string]string{"appointmentId": "7"}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, svc.gotReq)
	})

	t.Run("invalid appointment ID returns 400", func(t *testing.T) {
		svc := &stubAppointmentService{}
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, clientRequest("42", "abc", `{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.gotReq)
	})

	t.Run("access denied maps to 403", func(t *testing.T) {
		svc := &stubAppointmentService{err: appointments.ErrAccessDenied}
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, clientRequest("42", "7", `{}`))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandler_HandleAdmin(t *testing.T) {
	t.Run("admin cancel goes through service with salon flag", func(t *testing.T) {
		svc := &stubAppointmentService{}
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.HandleAdmin(rec, adminRequest("7", `{"cancellationReason":"мастер заболел"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.gotReq)
		assert.Equal(t, int64(7), svc.gotAppointmentID)
		assert.True(t, svc.gotReq.ByAdmin)
		assert.Zero(t, svc.gotReq.ClientID)
		assert.Equal(t, "мастер заболел", svc.gotReq.CancellationReason)
	})

	t.Run("completed appointment maps to 400", func(t *testing.T) {
		svc := &stubAppointmentService{err: appointments.ErrCannotCancel}
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.HandleAdmin(rec, adminRequest("7", `{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &stubAppointmentService{err: appointments.ErrAppointmentNotFound}
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.HandleAdmin(rec, adminRequest("99", `{}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
