package stripe

import "errors"

var (
	// ErrSessionNotFound возвращается, когда Stripe не знает такую сессию
	ErrSessionNotFound = errors.New("stripe client: checkout session not found")

	// ErrProvider возвращается при ошибке Stripe API или сети
	ErrProvider = errors.New("stripe client: provider error")

	// ErrInvalidSignature возвращается, когда подпись вебхука отсутствует или неверна
	ErrInvalidSignature = errors.New("stripe client: invalid webhook signature")

	// ErrInvalidPayload возвращается, когда тело вебхука не удалось разобрать
	ErrInvalidPayload = errors.New("stripe client: invalid webhook payload")

	// ErrNotConfigured возвращается, когда не задан секретный ключ или секрет вебхука
	ErrNotConfigured = errors.New("stripe client: not configured")
)
