package verify_payment

import (
	"context"

	"github.com/m04kA/SMC-ClassBookingService/internal/service/reconciler"
)

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
