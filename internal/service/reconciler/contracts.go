package reconciler

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// PaymentProvider источник истины о статусе оплаты
type PaymentProvider interface {
	GetSession(ctx context.Context, sessionID string) (*domain.SessionDetails, error)
}

// ConfirmationLedger журнал подтверждений, ключ - sessionId
type ConfirmationLedger interface {
	// Claim атомарно создаёт запись. true - запись создана этим вызовом.
	Claim(ctx context.Context, record *domain.ConfirmationRecord) (bool, error)
	MarkNotified(ctx context.Context, sessionID string, at time.Time) error
	MarkFailed(ctx context.Context, sessionID string, reason string) error
}

// Notifier рассылает уведомления о подтверждённом бронировании
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, confirmation *domain.PaymentConfirmation) error
}

// DeferredNotifier только ставит рассылку в очередь. Статус записи после публикации
// остаётся claimed, итог фиксирует воркер очереди.
type DeferredNotifier interface {
	Notifier
	Deferred() bool
}

// Metrics счётчики сверки платежей
type Metrics interface {
	ObservePaymentResolution(source, outcome string)
	ObserveNotification(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopMetrics struct{}

func (nopMetrics) ObservePaymentResolution(string, string) {}
func (nopMetrics) ObserveNotification(string)              {}
