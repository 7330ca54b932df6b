package create_appointment

import (
	"time"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	createAppointment "github.com/m04kA/NSS-BookingService/internal/usecase/create_appointment"
	"github.com/m04kA/NSS-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID       int64  `json:"serviceId"`
	MasterID        *int64 `json:"masterId,omitempty"`
	AppointmentDate string `json:"appointmentDate"` // "2026-03-12"
	StartTime       string `json:"startTime"`       // "10:00"
	ClientName      string `json:"clientName"`
	ClientPhone     string `json:"clientPhone,omitempty"`
	ClientEmail     string `json:"clientEmail,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	Code            string  `json:"code"`
	ClientID        int64   `json:"clientId"`
	ServiceID       int64   `json:"serviceId"`
	MasterID        *int64  `json:"masterId,omitempty"`
	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	MasterName      *string `json:"masterName,omitempty"`
	ClientName      string  `json:"clientName"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:    clientID,
		ServiceID:   r.ServiceID,
		MasterID:    r.MasterID,
		Date:        date,
		StartTime:   startTime,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	appt := resp.Appointment

	return &AppointmentResponse{
		ID:              appt.ID,
		Code:            appt.Code,
		ClientID:        appt.ClientID,
		ServiceID:       appt.ServiceID,
		MasterID:        appt.MasterID,
		AppointmentDate: appt.AppointmentDate.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		MasterName:      appt.MasterName,
		ClientName:      appt.ClientName,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
	}
}
