package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// DraftRepository интерфейс хранилища черновиков бронирования
type DraftRepository interface {
	Create(ctx context.Context, draft *domain.BookingDraft) error
	Get(ctx context.Context, id string) (*domain.BookingDraft, error)
	// Update сохраняет черновик, если в хранилище всё ещё лежит версия expectedVersion
	Update(ctx context.Context, draft *domain.BookingDraft, expectedVersion int) error
}

// ClassCatalog интерфейс каталога классов
type ClassCatalog interface {
	GetBookable(ctx context.Context, classID string) (*domain.ClassOffering, error)
}

// Calendar интерфейс календаря доступности
type Calendar interface {
	SlotsForDate(value string, now time.Time) (domain.Availability, error)
}

// Validator интерфейс валидатора входных моделей
type Validator interface {
	Struct(s interface{}) error
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
