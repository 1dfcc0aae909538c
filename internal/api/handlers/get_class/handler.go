package get_class

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/catalog"
)

const msgNotFound = "Class not found"

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

// Handle GET /api/v1/classes/{classId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["classId"]

	class, err := h.service.Get(r.Context(), classID)
	if err != nil {
		if errors.Is(err, catalog.ErrClassNotFound) {
			h.logger.Warn("GET /classes/{id} - Class not found: class_id=%s", classID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /classes/{id} - Failed to get class: class_id=%s, error=%v", classID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, class)
}
