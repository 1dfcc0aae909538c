package get_available_slots

import "github.com/m04kA/SMC-ClassBookingService/internal/domain"

// Request модель запроса на получение доступных слотов
type Request struct {
	ClassID string // ID класса из каталога
	Date    string // Дата в формате YYYY-MM-DD в часовом поясе бизнеса
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ClassID string
	Date    string
	Slots   []domain.TimeSlot
	Reason  domain.UnavailableReason // пусто, если слоты есть
}
