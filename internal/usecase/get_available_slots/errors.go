package get_available_slots

import "errors"

var (
	// ErrClassNotFound возвращается, когда класс не найден в каталоге
	ErrClassNotFound = errors.New("get_available_slots: class not found")

	// ErrClassNotBookable возвращается для классов, которые нельзя забронировать онлайн
	ErrClassNotBookable = errors.New("get_available_slots: class is not bookable")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
