package list_classes

import (
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
)

type Handler struct {
	service ClassService
	logger  Logger
}

func NewHandler(service ClassService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/classes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /classes - Failed to list classes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, classes)
}
