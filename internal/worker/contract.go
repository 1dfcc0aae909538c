package worker

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// DeliverySource источник сообщений очереди
type DeliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

// Notifier отправляет письма о подтверждённом бронировании
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, confirmation *domain.PaymentConfirmation) error
}

// ConfirmationLedger журнал подтверждений: гейт отправки и её результат
type ConfirmationLedger interface {
	// BeginSending переводит claimed -> sending. false - отправку уже начал кто-то другой.
	BeginSending(ctx context.Context, sessionID string) (bool, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.ConfirmationRecord, error)
	MarkNotified(ctx context.Context, sessionID string, at time.Time) error
	MarkFailed(ctx context.Context, sessionID string, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
