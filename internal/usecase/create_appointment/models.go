package create_appointment

import (
	"time"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	"github.com/m04kA/NSS-BookingService/pkg/types"
)

// Request запрос на создание записи
type Request struct {
	ClientID    int64
	ServiceID   int64
	MasterID    *int64
	Date        time.Time
	StartTime   types.TimeString
	ClientName  string
	ClientPhone string
	ClientEmail string
	Notes       string
}

// Response созданная запись
type Response struct {
	Appointment *domain.Appointment
}
