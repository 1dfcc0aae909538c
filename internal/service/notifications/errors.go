package notifications

import "errors"

var (
	// ErrSendFailed возвращается, когда хотя бы одно письмо не отправлено
	ErrSendFailed = errors.New("notifications: send failed")

	// ErrPublishFailed возвращается, когда событие не удалось опубликовать
	ErrPublishFailed = errors.New("notifications: publish failed")

	// ErrRender возвращается при ошибке сборки письма
	ErrRender = errors.New("notifications: render failed")
)
