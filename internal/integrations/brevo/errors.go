package brevo

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан API ключ
	ErrNotConfigured = errors.New("brevo client: api key is not configured")

	// ErrUnauthorized возвращается при неверном API ключе
	ErrUnauthorized = errors.New("brevo client: unauthorized")

	// ErrRejected возвращается, когда Brevo отклонил письмо (400)
	ErrRejected = errors.New("brevo client: email rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("brevo client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("brevo client: invalid response")
)
