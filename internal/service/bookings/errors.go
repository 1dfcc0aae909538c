package bookings

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истёк
	ErrDraftNotFound = errors.New("draft not found")

	// ErrInvalidTransition возвращается, когда переход недопустим из текущего шага
	ErrInvalidTransition = errors.New("invalid step transition")

	// ErrConcurrentUpdate возвращается, когда черновик изменили параллельно
	ErrConcurrentUpdate = errors.New("draft was modified concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
