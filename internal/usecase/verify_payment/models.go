package verify_payment

// Request модель запроса проверки оплаты
type Request struct {
	SessionID string
}

// Response данные для страницы результата оплаты
type Response struct {
	SessionID     string
	ClassName     string
	Email         string
	Amount        float64
	PaymentStatus string
	CustomerName  string
	CustomerPhone string
	BookingDate   string
	BookingTime   string
	Step          string // confirmed, если оплата прошла
}
