package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// Calendar вычисляет доступные слоты по недельному шаблону и календарю праздников.
// Не имеет изменяемого состояния, безопасен для конкурентного использования.
type Calendar struct {
	template           domain.WeeklyTemplate
	holidays           domain.HolidayCalendar
	location           *time.Location
	advanceBookingDays int // 0 = без ограничения
	minNotice          time.Duration
}

// Options параметры календаря
type Options struct {
	Template                domain.WeeklyTemplate
	Holidays                domain.HolidayCalendar
	Location                *time.Location
	AdvanceBookingDays      int
	MinBookingNoticeMinutes int
}

// New создает календарь. Без Location используется UTC.
func New(opts Options) *Calendar {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	holidays := opts.Holidays
	if holidays == nil {
		holidays = domain.HolidayCalendar{}
	}
	return &Calendar{
		template:           opts.Template,
		holidays:           holidays,
		location:           loc,
		advanceBookingDays: opts.AdvanceBookingDays,
		minNotice:          time.Duration(opts.MinBookingNoticeMinutes) * time.Minute,
	}
}

// Location возвращает часовой пояс бизнеса
func (c *Calendar) Location() *time.Location {
	return c.location
}

// ParseDate разбирает дату YYYY-MM-DD в часовом поясе бизнеса
func (c *Calendar) ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(value), c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return date, nil
}

// SlotsForDate то же, что SlotsFor, но для даты в виде строки
func (c *Calendar) SlotsForDate(value string, now time.Time) (domain.Availability, error) {
	date, err := c.ParseDate(value)
	if err != nil {
		return domain.Availability{}, err
	}
	return c.SlotsFor(date, now), nil
}

// SlotsFor возвращает слоты на дату. Пустой результат всегда сопровождается причиной.
func (c *Calendar) SlotsFor(date, now time.Time) domain.Availability {
	// Приводим обе даты к часовому поясу бизнеса
	date = truncateDay(date.In(c.location))
	now = now.In(c.location)
	today := truncateDay(now)
	key := date.Format(domain.DateFormat)

	empty := func(reason domain.UnavailableReason) domain.Availability {
		return domain.Availability{Date: key, Slots: []domain.TimeSlot{}, Reason: reason}
	}

	// 1. Дата в прошлом
	if date.Before(today) {
		return empty(domain.ReasonPastDate)
	}

	// 2. Окно предварительной записи
	if c.advanceBookingDays > 0 && date.After(today.AddDate(0, 0, c.advanceBookingDays)) {
		return empty(domain.ReasonTooFarAhead)
	}

	// 3. Выходной день проверяется раньше праздника
	hours := c.template.HoursFor(date.Weekday())
	if len(hours) == 0 {
		return empty(domain.ReasonClosedDay)
	}

	// 4. Праздник
	if c.holidays.Contains(key) {
		return empty(domain.ReasonHoliday)
	}

	// 5. Генерируем слоты, для сегодняшнего дня учитываем минимальное время до начала
	earliest := time.Time{}
	if c.minNotice > 0 && date.Equal(today) {
		earliest = now.Add(c.minNotice)
	}

	slots := make([]domain.TimeSlot, 0, len(hours))
	for _, hour := range hours {
		start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, c.location)
		if !earliest.IsZero() && start.Before(earliest) {
			continue
		}
		slots = append(slots, domain.NewTimeSlot(hour))
	}

	if len(slots) == 0 {
		return empty(domain.ReasonNoticeTooShort)
	}

	return domain.Availability{Date: key, Slots: slots}
}

// truncateDay обнуляет время, оставляя дату в том же часовом поясе
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
