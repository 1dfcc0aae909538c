package handle_webhook

import (
	"context"

	stripeClient "github.com/m04kA/SMC-ClassBookingService/internal/integrations/stripe"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/reconciler"
)

// WebhookParser проверяет подпись и разбирает событие провайдера
type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (*stripeClient.WebhookEvent, error)
}

// PaymentReconciler интерфейс сверки платежей
type PaymentReconciler interface {
	Resolve(ctx context.Context, sessionID string, source reconciler.Source) (*reconciler.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
