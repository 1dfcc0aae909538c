package verify_payment

import verifyPayment "github.com/m04kA/SMC-ClassBookingService/internal/usecase/verify_payment"

// VerifyPaymentResponse HTTP response model
type VerifyPaymentResponse struct {
	ClassName     string  `json:"className"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	BookingDate   string  `json:"bookingDate"`
	BookingTime   string  `json:"bookingTime"`
	Step          string  `json:"step"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *verifyPayment.Response) *VerifyPaymentResponse {
	return &VerifyPaymentResponse{
		ClassName:     resp.ClassName,
		Email:         resp.Email,
		Amount:        resp.Amount,
		PaymentStatus: resp.PaymentStatus,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		BookingDate:   resp.BookingDate,
		BookingTime:   resp.BookingTime,
		Step:          resp.Step,
	}
}
