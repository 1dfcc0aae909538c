package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClassBookingService/internal/service/calendar"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/catalog"
)

// UseCase use case для получения доступных слотов класса на дату
type UseCase struct {
	catalog      ClassCatalog
	calendar     Calendar
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog ClassCatalog, calendar Calendar, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: class=%s, date=%s", req.ClassID, req.Date)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.ClassID) == "" {
		uc.logger.Warn("GetAvailableSlots: class id is empty")
		return nil, fmt.Errorf("%w: class id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" {
		uc.logger.Warn("GetAvailableSlots: date is empty")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверяем класс
	offering, err := uc.catalog.GetOffering(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, catalog.ErrClassNotFound) {
			uc.logger.Warn("GetAvailableSlots: class id=%s not found", req.ClassID)
			return nil, ErrClassNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get class id=%s: %v", req.ClassID, err)
		return nil, fmt.Errorf("%w: failed to get class: %v", ErrInternal, err)
	}
	if !offering.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: class id=%s is not bookable", req.ClassID)
		return nil, ErrClassNotBookable
	}

	// 3. Считаем слоты на дату
	availability, err := uc.calendar.SlotsForDate(req.Date, uc.timeProvider.Now())
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidDate) {
			uc.logger.Warn("GetAvailableSlots: invalid date %q", req.Date)
			return nil, ErrInvalidDate
		}
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: class=%s, date=%s, slots=%d, reason=%s",
		req.ClassID, req.Date, len(availability.Slots), availability.Reason)

	return &Response{
		ClassID: req.ClassID,
		Date:    req.Date,
		Slots:   availability.Slots,
		Reason:  availability.Reason,
	}, nil
}
