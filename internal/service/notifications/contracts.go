package notifications

import (
	"context"

	"github.com/m04kA/SMC-ClassBookingService/internal/integrations/brevo"
)

// EmailSender клиент транзакционных писем
type EmailSender interface {
	Send(ctx context.Context, email *brevo.Email) (*brevo.SendResponse, error)
}

// Publisher публикует события в брокер
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
