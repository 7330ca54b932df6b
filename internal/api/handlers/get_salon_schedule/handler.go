package get_salon_schedule

import (
	"net/http"

	"github.com/m04kA/NSS-BookingService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salon/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /salon/schedule - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salon/schedule - Schedule retrieved successfully: %s-%s",
		result.OpenTime, result.CloseTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
