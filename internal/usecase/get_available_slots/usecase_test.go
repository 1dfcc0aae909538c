package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/calendar"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	hours := []int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	cal := calendar.New(calendar.Options{
		Template: domain.NewWeeklyTemplate(map[time.Weekday][]int{
			time.Monday: hours, time.Tuesday: hours, time.Wednesday: hours,
			time.Thursday: hours, time.Friday: hours,
		}),
		Holidays: domain.NewHolidayCalendar([]string{"2024-07-04"}),
		Location: loc,
	})

	uc := NewUseCase(catalog.NewService(catalog.DefaultClasses(), nopLogger{}), cal, nopLogger{})
	// понедельник 2024-06-03 08:00 по времени бизнеса
	uc.timeProvider = fixedTime{now: time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_ReturnsSlots(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{ClassID: "adult-first-aid-cpr-aed", Date: "2024-06-04"})
	require.NoError(t, err)

	assert.Equal(t, domain.ReasonNone, resp.Reason)
	require.Len(t, resp.Slots, 10)
	assert.Equal(t, "9:00 AM", resp.Slots[0].Label)
	assert.Equal(t, "6:00 PM", resp.Slots[9].Label)
}

func TestExecute_EmptyDays(t *testing.T) {
	uc := newTestUseCase(t)

	tests := []struct {
		date   string
		reason domain.UnavailableReason
	}{
		{"2024-06-01", domain.ReasonPastDate},
		{"2024-06-08", domain.ReasonClosedDay},
		{"2024-07-04", domain.ReasonHoliday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{ClassID: "bloodborne-pathogens", Date: tt.date})
			require.NoError(t, err)
			assert.Empty(t, resp.Slots)
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUseCase(t)

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{"empty class", &Request{Date: "2024-06-04"}, ErrInvalidInput},
		{"empty date", &Request{ClassID: "bloodborne-pathogens"}, ErrInvalidInput},
		{"unknown class", &Request{ClassID: "nope", Date: "2024-06-04"}, ErrClassNotFound},
		{"coming soon", &Request{ClassID: "ois", Date: "2024-06-04"}, ErrClassNotBookable},
		{"contact only", &Request{ClassID: "workday-training", Date: "2024-06-04"}, ErrClassNotBookable},
		{"bad date", &Request{ClassID: "bloodborne-pathogens", Date: "06/04/2024"}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
