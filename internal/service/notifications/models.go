package notifications

import "github.com/m04kA/SMC-ClassBookingService/internal/domain"

// RoutingKeyBookingConfirmed ключ маршрутизации события о подтверждённом бронировании
const RoutingKeyBookingConfirmed = "booking.confirmed"

// BookingConfirmedMessage событие о подтверждённой оплате
type BookingConfirmedMessage struct {
	SessionID     string `json:"sessionId"`
	PaymentStatus string `json:"paymentStatus"`
	AmountMinor   int64  `json:"amountMinor"`
	Currency      string `json:"currency"`
	ClassID       string `json:"classId"`
	ClassName     string `json:"className"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	BookingDate   string `json:"bookingDate"`
	BookingTime   string `json:"bookingTime"`
}

// NewBookingConfirmedMessage собирает событие из подтверждения
func NewBookingConfirmedMessage(c *domain.PaymentConfirmation) *BookingConfirmedMessage {
	return &BookingConfirmedMessage{
		SessionID:     c.SessionID,
		PaymentStatus: c.PaymentStatus,
		AmountMinor:   c.AmountMinor,
		Currency:      c.Currency,
		ClassID:       c.ClassID,
		ClassName:     c.ClassName,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		BookingDate:   c.BookingDate,
		BookingTime:   c.BookingTime,
	}
}

// ToConfirmation восстанавливает подтверждение из события
func (m *BookingConfirmedMessage) ToConfirmation() *domain.PaymentConfirmation {
	return &domain.PaymentConfirmation{
		SessionID:     m.SessionID,
		Paid:          m.PaymentStatus == domain.PaymentStatusPaid,
		PaymentStatus: m.PaymentStatus,
		Amount:        domain.FromMinorUnits(m.AmountMinor),
		AmountMinor:   m.AmountMinor,
		Currency:      m.Currency,
		ClassID:       m.ClassID,
		ClassName:     m.ClassName,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		CustomerPhone: m.CustomerPhone,
		BookingDate:   m.BookingDate,
		BookingTime:   m.BookingTime,
	}
}

// ContactMessage сообщение с формы обратной связи
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}
