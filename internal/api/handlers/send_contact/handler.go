package send_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	sendContactMessage "github.com/m04kA/SMC-ClassBookingService/internal/usecase/send_contact_message"
)

const (
	msgInvalidRequest   = "Invalid request"
	msgValidationFailed = "Invalid contact details"
	msgSendFailed       = "Failed to send email"
	msgSent             = "Email sent successfully"
)

// MessageResponse ответ об успешной отправке
type MessageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	useCase SendContactMessageUseCase
	logger  Logger
}

func NewHandler(useCase SendContactMessageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req sendContactMessage.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	if err := h.useCase.Execute(r.Context(), &req); err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /contact - Validation failed: %v", verr)
			handlers.RespondValidationError(w, msgValidationFailed, verr)

		case errors.Is(err, sendContactMessage.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /contact - Failed to send message: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSendFailed)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: msgSent})
}
