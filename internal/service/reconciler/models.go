package reconciler

import "github.com/m04kA/SMC-ClassBookingService/internal/domain"

// Source канал, по которому пришёл сигнал об оплате
type Source string

const (
	SourceWebhook Source = "webhook"
	SourceVerify  Source = "verify"
)

// Исходы сверки для метрик
const (
	OutcomeUnpaid    = "unpaid"
	OutcomeConfirmed = "confirmed"
	OutcomeDuplicate = "duplicate"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

// Результаты отправки уведомлений для метрик
const (
	NotificationSent   = "sent"
	NotificationQueued = "queued"
	NotificationFailed = "failed"
)

// Result результат сверки сессии
type Result struct {
	Confirmation *domain.PaymentConfirmation
	// Dispatched true только для вызова, который первым подтвердил оплату и разослал уведомления
	Dispatched bool
}
