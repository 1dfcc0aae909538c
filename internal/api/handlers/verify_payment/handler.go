package verify_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	verifyPayment "github.com/m04kA/SMC-ClassBookingService/internal/usecase/verify_payment"
)

const (
	msgMissingSessionID = "Session ID is required"
	msgSessionNotFound  = "Session not found"
	msgVerifyFailed     = "Failed to verify payment"
)

type Handler struct {
	useCase VerifyPaymentUseCase
	logger  Logger
}

func NewHandler(useCase VerifyPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/verify-payment?session_id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")

	result, err := h.useCase.Execute(r.Context(), &verifyPayment.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, verifyPayment.ErrInvalidInput):
			h.logger.Warn("GET /verify-payment - Missing session id")
			handlers.RespondBadRequest(w, msgMissingSessionID)

		case errors.Is(err, verifyPayment.ErrSessionNotFound):
			h.logger.Warn("GET /verify-payment - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /verify-payment - Failed to verify: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgVerifyFailed)
		}
		return
	}

	h.logger.Info("GET /verify-payment - Verified: session_id=%s, status=%s", sessionID, result.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
