package reconciler

import "errors"

var (
	// ErrInvalidInput возвращается при пустом sessionId
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSessionNotFound возвращается, когда провайдер не знает сессию
	ErrSessionNotFound = errors.New("payment session not found")

	// ErrGateway возвращается при ошибке провайдера оплаты, запрос можно повторить
	ErrGateway = errors.New("reconciler: payment provider error")

	// ErrInternal возвращается при ошибках журнала подтверждений
	ErrInternal = errors.New("reconciler: internal error")
)
