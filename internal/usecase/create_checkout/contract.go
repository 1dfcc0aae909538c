package create_checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// PaymentGateway интерфейс платёжного провайдера
type PaymentGateway interface {
	CreateSession(ctx context.Context, req *domain.CheckoutRequest) (*domain.PaymentSession, error)
}

// ClassCatalog интерфейс каталога классов
type ClassCatalog interface {
	GetBookable(ctx context.Context, classID string) (*domain.ClassOffering, error)
	CheckPrice(offering *domain.ClassOffering, price float64) error
}

// Calendar интерфейс календаря доступности
type Calendar interface {
	SlotsForDate(value string, now time.Time) (domain.Availability, error)
}

// DraftRepository интерфейс хранилища черновиков
type DraftRepository interface {
	Get(ctx context.Context, id string) (*domain.BookingDraft, error)
	Delete(ctx context.Context, id string) error
}

// Validator интерфейс валидации структур по тегам
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
