package checkout

import createCheckout "github.com/m04kA/SMC-ClassBookingService/internal/usecase/create_checkout"

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
	DraftID   string `json:"draftId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheckout.Response) *SessionResponse {
	return &SessionResponse{
		SessionID: resp.SessionID,
		URL:       resp.URL,
		DraftID:   resp.DraftID,
	}
}
