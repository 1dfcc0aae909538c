package brevo

// Contact адресат или отправитель письма
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Email письмо для отправки
type Email struct {
	To      []Contact
	Subject string
	HTML    string
	ReplyTo *Contact
}

// sendRequest тело запроса POST /v3/smtp/email
type sendRequest struct {
	Sender      Contact   `json:"sender"`
	To          []Contact `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
	ReplyTo     *Contact  `json:"replyTo,omitempty"`
}

// SendResponse ответ Brevo на отправку
type SendResponse struct {
	MessageID string `json:"messageId"`
}

// ErrorResponse модель ошибки от Brevo
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
