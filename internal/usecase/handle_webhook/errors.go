package handle_webhook

import "errors"

var (
	// ErrInvalidSignature возвращается при отсутствующей или неверной подписи
	ErrInvalidSignature = errors.New("handle_webhook: invalid signature")

	// ErrInvalidPayload возвращается, когда подписанное тело не удалось разобрать
	ErrInvalidPayload = errors.New("handle_webhook: invalid payload")

	// ErrNotConfigured возвращается, когда не задан секрет вебхука
	ErrNotConfigured = errors.New("handle_webhook: webhook secret is not configured")

	// ErrInternal возвращается, когда сверку нужно повторить (провайдер доставит событие ещё раз)
	ErrInternal = errors.New("handle_webhook: internal error")
)
