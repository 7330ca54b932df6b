package get_reports

import (
	"context"
	"time"

	"github.com/m04kA/NSS-BookingService/internal/service/reports/models"
)

type ReportService interface {
	BuildReport(ctx context.Context, from, to time.Time) (*models.ReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
