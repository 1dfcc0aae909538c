package verify_payment

import "errors"

var (
	// ErrInvalidInput возвращается, когда не передан session_id
	ErrInvalidInput = errors.New("verify_payment: session id is required")

	// ErrSessionNotFound возвращается, когда провайдер не знает сессию
	ErrSessionNotFound = errors.New("verify_payment: session not found")

	// ErrGateway возвращается при ошибке платёжного провайдера, запрос можно повторить
	ErrGateway = errors.New("verify_payment: payment provider error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_payment: internal error")
)
