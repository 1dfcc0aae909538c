package checkout

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	createCheckout "github.com/m04kA/SMC-ClassBookingService/internal/usecase/create_checkout"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgCheckoutDisabled   = "Checkout temporarily disabled"
	msgDraftNotFound      = "Draft not found or expired"
	msgInvalidTransition  = "Draft is not ready for checkout"
	msgValidationFailed   = "Invalid booking details"
	msgInvalidInput       = "Invalid input"
	msgGateway            = "Failed to create checkout session, please try again later"
)

type Handler struct {
	useCase CreateCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout-session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createCheckout.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout-session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /checkout-session", err)
		return
	}

	h.logger.Info("POST /checkout-session - Session created: session_id=%s, class_id=%s", result.SessionID, req.ClassID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleDraft POST /api/v1/drafts/{draftId}/checkout
func (h *Handler) HandleDraft(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	result, err := h.useCase.ExecuteDraft(r.Context(), draftID)
	if err != nil {
		h.respondError(w, "POST /drafts/{id}/checkout", err)
		return
	}

	h.logger.Info("POST /drafts/{id}/checkout - Session created: session_id=%s, draft_id=%s", result.SessionID, draftID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, createCheckout.ErrCheckoutDisabled):
		h.logger.Warn("%s - Checkout disabled", route)
		handlers.RespondServiceUnavailable(w, msgCheckoutDisabled)

	case errors.As(err, &verr):
		h.logger.Warn("%s - Validation failed: %v", route, verr)
		handlers.RespondValidationError(w, msgValidationFailed, verr)

	case errors.Is(err, createCheckout.ErrDraftNotFound):
		h.logger.Warn("%s - Draft not found", route)
		handlers.RespondNotFound(w, msgDraftNotFound)

	case errors.Is(err, createCheckout.ErrInvalidTransition):
		h.logger.Warn("%s - Draft not awaiting payment: %v", route, err)
		handlers.RespondConflict(w, msgInvalidTransition)

	case errors.Is(err, createCheckout.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, createCheckout.ErrGateway):
		h.logger.Error("%s - Payment provider error: %v", route, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgGateway)

	default:
		h.logger.Error("%s - Failed to create session: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
