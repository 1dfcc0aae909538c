package send_contact_message

import "errors"

var (
	// ErrInvalidInput возвращается при ошибке валидатора, не связанной с полями
	ErrInvalidInput = errors.New("send_contact_message: invalid input data")

	// ErrSendFailed возвращается, когда письмо не удалось отправить
	ErrSendFailed = errors.New("send_contact_message: failed to send email")
)
