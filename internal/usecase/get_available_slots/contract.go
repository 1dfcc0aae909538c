package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// ClassCatalog интерфейс каталога классов
type ClassCatalog interface {
	GetOffering(ctx context.Context, classID string) (*domain.ClassOffering, error)
}

// Calendar интерфейс календаря доступности
type Calendar interface {
	SlotsForDate(value string, now time.Time) (domain.Availability, error)
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
