package list_confirmations

import (
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
)

const msgInvalidParams = "Invalid query parameters"

type Handler struct {
	ledger ConfirmationLedger
	logger Logger
}

func NewHandler(ledger ConfirmationLedger, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Handle GET /api/v1/admin/confirmations
// Query params: from, to, status, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := ToFilter(q.Get("from"), q.Get("to"), q.Get("status"), q.Get("limit"))
	if err != nil {
		h.logger.Warn("GET /admin/confirmations - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	records, err := h.ledger.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin/confirmations - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/confirmations - Listed %d records", len(records))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(records))
}
