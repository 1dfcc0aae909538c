package send_contact_message

import (
	"context"

	"github.com/m04kA/SMC-ClassBookingService/internal/service/notifications"
)

// ContactSender пересылает сообщение администратору
type ContactSender interface {
	SendContactMessage(ctx context.Context, m *notifications.ContactMessage) error
}

// Validator интерфейс валидации структур по тегам
type Validator interface {
	Struct(s interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
