package stripe

// Типы событий вебхука, завершающие оплату
const (
	EventCheckoutCompleted          = "checkout.session.completed"
	EventCheckoutAsyncPaymentPassed = "checkout.session.async_payment_succeeded"
)

// Options параметры создания checkout-сессий
type Options struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	SuccessURL    string
	CancelURL     string

	// APIURL переопределяет адрес API (stripe-mock, тесты). Пусто - api.stripe.com.
	APIURL string
}

// WebhookEvent проверенное событие вебхука
type WebhookEvent struct {
	ID        string
	Type      string
	SessionID string // пусто для событий не про checkout-сессию
}

// CompletesPayment возвращает true для событий, после которых сессию нужно сверить
func (e *WebhookEvent) CompletesPayment() bool {
	return e.Type == EventCheckoutCompleted || e.Type == EventCheckoutAsyncPaymentPassed
}
