package drafts

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgNotFound           = "Draft not found or expired"
	msgInvalidTransition  = "Action is not available at the current step"
	msgConcurrentUpdate   = "Draft was modified, reload and try again"
	msgValidationFailed   = "Invalid booking details"
	msgInvalidInput       = "Invalid input"
)

// Handler шаги черновика бронирования
type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/drafts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.Create(r.Context())
	if err != nil {
		h.respondError(w, "POST /drafts", "", err)
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s", draft.ID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}

// Get GET /api/v1/drafts/{draftId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	draft, err := h.service.Get(r.Context(), draftID)
	if err != nil {
		h.respondError(w, "GET /drafts/{id}", draftID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}

// SelectClass PUT /api/v1/drafts/{draftId}/class
func (h *Handler) SelectClass(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req models.SelectClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/class - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.DraftID = draftID

	draft, err := h.service.SelectClass(r.Context(), &req)
	if err != nil {
		h.respondError(w, "PUT /drafts/{id}/class", draftID, err)
		return
	}

	h.logger.Info("PUT /drafts/{id}/class - Class selected: draft_id=%s, class_id=%s", draftID, req.ClassID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}

// SubmitDetails PUT /api/v1/drafts/{draftId}/details
func (h *Handler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req models.SubmitDetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/details - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.DraftID = draftID

	draft, err := h.service.SubmitDetails(r.Context(), &req)
	if err != nil {
		h.respondError(w, "PUT /drafts/{id}/details", draftID, err)
		return
	}

	h.logger.Info("PUT /drafts/{id}/details - Details submitted: draft_id=%s, step=%s", draftID, draft.Step)
	handlers.RespondJSON(w, http.StatusOK, draft)
}

// Back POST /api/v1/drafts/{draftId}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	draft, err := h.service.Back(r.Context(), draftID)
	if err != nil {
		h.respondError(w, "POST /drafts/{id}/back", draftID, err)
		return
	}

	h.logger.Info("POST /drafts/{id}/back - Draft moved back: draft_id=%s, step=%s", draftID, draft.Step)
	handlers.RespondJSON(w, http.StatusOK, draft)
}

func (h *Handler) respondError(w http.ResponseWriter, route, draftID string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.logger.Warn("%s - Validation failed: draft_id=%s, %v", route, draftID, verr)
		handlers.RespondValidationError(w, msgValidationFailed, verr)

	case errors.Is(err, bookings.ErrDraftNotFound):
		h.logger.Warn("%s - Draft not found: draft_id=%s", route, draftID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, bookings.ErrInvalidTransition):
		h.logger.Warn("%s - Invalid transition: draft_id=%s, %v", route, draftID, err)
		handlers.RespondConflict(w, msgInvalidTransition)

	case errors.Is(err, bookings.ErrConcurrentUpdate):
		h.logger.Warn("%s - Concurrent update: draft_id=%s", route, draftID)
		handlers.RespondConflict(w, msgConcurrentUpdate)

	case errors.Is(err, bookings.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: draft_id=%s, %v", route, draftID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondInternalError(w)
	}
}
