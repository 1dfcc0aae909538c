package domain

import "fmt"

// UnavailableReason explains why a date has no bookable slots
type UnavailableReason string

const (
	ReasonNone        UnavailableReason = ""
	ReasonPastDate    UnavailableReason = "past_date"
	ReasonTooFarAhead UnavailableReason = "too_far_ahead"
	ReasonClosedDay   UnavailableReason = "closed_day"
	ReasonHoliday     UnavailableReason = "holiday"
	// ReasonNoticeTooShort all slots of the day start sooner than the minimum notice
	ReasonNoticeTooShort UnavailableReason = "notice_too_short"
)

// TimeSlot is a bookable start time
type TimeSlot struct {
	Hour  int
	Label string // "10:00 AM"
}

// NewTimeSlot builds a slot for the given hour of day
func NewTimeSlot(hour int) TimeSlot {
	return TimeSlot{Hour: hour, Label: FormatHour(hour)}
}

// Availability is the result of a slot query for one date
type Availability struct {
	Date   string
	Slots  []TimeSlot
	Reason UnavailableReason
}

// IsOpen returns true if at least one slot is bookable
func (a *Availability) IsOpen() bool {
	return len(a.Slots) > 0
}

// HasSlot returns true if label matches one of the slots
func (a *Availability) HasSlot(label string) bool {
	for _, s := range a.Slots {
		if s.Label == label {
			return true
		}
	}
	return false
}

// Labels returns the slot labels in order
func (a *Availability) Labels() []string {
	labels := make([]string, 0, len(a.Slots))
	for _, s := range a.Slots {
		labels = append(labels, s.Label)
	}
	return labels
}

// FormatHour renders an hour of day in 12-hour form: 0 -> "12:00 AM", 13 -> "1:00 PM"
func FormatHour(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:00 %s", h, period)
}
