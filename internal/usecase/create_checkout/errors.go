package create_checkout

import "errors"

var (
	// ErrCheckoutDisabled возвращается, когда онлайн-оплата выключена
	ErrCheckoutDisabled = errors.New("create_checkout: checkout temporarily disabled")

	// ErrDraftNotFound возвращается, когда черновик не найден или истёк
	ErrDraftNotFound = errors.New("create_checkout: draft not found")

	// ErrInvalidTransition возвращается, когда черновик ещё не готов к оплате
	ErrInvalidTransition = errors.New("create_checkout: draft is not awaiting payment")

	// ErrGateway возвращается при ошибке платёжного провайдера
	ErrGateway = errors.New("create_checkout: payment provider error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_checkout: internal error")
)
