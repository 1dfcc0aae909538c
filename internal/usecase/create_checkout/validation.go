package create_checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// checkSlot проверяет, что время входит в слоты даты на момент now
func checkSlot(cal Calendar, verr *domain.ValidationError, dateField, timeField, date, slot string, now time.Time) {
	availability, err := cal.SlotsForDate(date, now)
	if err != nil {
		verr.Add(dateField, "must be a date in YYYY-MM-DD format")
		return
	}
	if !availability.IsOpen() {
		verr.Add(dateField, fmt.Sprintf("date is not available (%s)", availability.Reason))
		return
	}
	if !availability.HasSlot(slot) {
		verr.Add(timeField, "time is not available on the selected date")
	}
}

// fieldErrors приводит ошибку валидатора к ValidationError
func fieldErrors(err error) (*domain.ValidationError, error) {
	if err == nil {
		return domain.NewValidationError(), nil
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
