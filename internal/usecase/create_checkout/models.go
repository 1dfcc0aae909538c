package create_checkout

import "github.com/m04kA/SMC-ClassBookingService/internal/domain"

// Request модель прямого запроса на оплату
type Request struct {
	ClassID       string  `json:"classId" validate:"required"`
	ClassName     string  `json:"className"`
	Price         float64 `json:"price" validate:"gt=0"`
	CustomerName  string  `json:"customerName" validate:"required,min=2,max=100"`
	CustomerEmail string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone string  `json:"customerPhone" validate:"required,phone"`
	BookingDate   string  `json:"bookingDate" validate:"required"`
	BookingTime   string  `json:"bookingTime" validate:"required"`
}

// Contact возвращает контактный блок запроса
func (r *Request) Contact() domain.Contact {
	return domain.Contact{Name: r.CustomerName, Email: r.CustomerEmail, Phone: r.CustomerPhone}
}

// Response модель ответа с созданной сессией
type Response struct {
	SessionID string
	URL       string
	DraftID   string // пусто для прямой оплаты
}
