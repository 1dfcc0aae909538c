package handle_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	handleWebhook "github.com/m04kA/SMC-ClassBookingService/internal/usecase/handle_webhook"
)

// SignatureHeader заголовок с подписью вебхука
const SignatureHeader = "Stripe-Signature"

const (
	// MaxPayloadBytes предел тела события, больше - 413
	MaxPayloadBytes = 512 << 10

	msgInvalidBody      = "Failed to read request body"
	msgPayloadTooLarge  = "Webhook payload too large"
	msgInvalidSignature = "Webhook signature verification failed"
	msgInvalidPayload   = "Invalid webhook event"
	msgWebhookFailed    = "Webhook handler failed"
)

// ReceivedResponse ответ провайдеру о приёме события
type ReceivedResponse struct {
	Received bool `json:"received"`
}

type Handler struct {
	useCase HandleWebhookUseCase
	logger  Logger
}

func NewHandler(useCase HandleWebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhook
// Тело читается как есть: подпись считается по сырым байтам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxPayloadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Error("POST /webhook - Payload exceeds %d bytes", tooLarge.Limit)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgPayloadTooLarge)
			return
		}
		h.logger.Warn("POST /webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &handleWebhook.Request{
		Payload:   payload,
		Signature: r.Header.Get(SignatureHeader),
	})
	if err != nil {
		switch {
		case errors.Is(err, handleWebhook.ErrInvalidSignature):
			h.logger.Warn("POST /webhook - Invalid signature")
			handlers.RespondBadRequest(w, msgInvalidSignature)

		case errors.Is(err, handleWebhook.ErrInvalidPayload):
			h.logger.Warn("POST /webhook - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayload)

		default:
			h.logger.Error("POST /webhook - Failed to handle event: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgWebhookFailed)
		}
		return
	}

	h.logger.Info("POST /webhook - Event received: event_id=%s, type=%s, handled=%t",
		result.EventID, result.EventType, result.Handled)
	handlers.RespondJSON(w, http.StatusOK, ReceivedResponse{Received: true})
}
