package cancel_appointment

import "github.com/m04kA/NSS-BookingService/internal/service/appointments/models"

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(clientID int64) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		ClientID:           clientID,
		CancellationReason: r.CancellationReason,
	}
}

// ToAdminServiceRequest конвертирует HTTP запрос администратора в модель сервиса
func (r *CancelAppointmentRequest) ToAdminServiceRequest() *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		ByAdmin:            true,
		CancellationReason: r.CancellationReason,
	}
}
