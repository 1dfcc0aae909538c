package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ClassBookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "Date is required"
	msgInvalidDate      = "Invalid date format, expected YYYY-MM-DD"
	msgClassNotFound    = "Class not found"
	msgClassNotBookable = "Class is not available for online booking"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/classes/{classId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["classId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /classes/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{ClassID: classID, Date: dateStr})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrClassNotFound):
			h.logger.Warn("GET /classes/{id}/available-slots - Class not found: class_id=%s", classID)
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, getAvailableSlots.ErrClassNotBookable):
			h.logger.Warn("GET /classes/{id}/available-slots - Class not bookable: class_id=%s", classID)
			handlers.RespondBadRequest(w, msgClassNotBookable)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate), errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /classes/{id}/available-slots - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /classes/{id}/available-slots - Failed to get slots: class_id=%s, error=%v", classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /classes/{id}/available-slots - Slots retrieved: class_id=%s, date=%s, slots_count=%d",
		classID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
