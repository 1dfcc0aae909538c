package domain

import (
	"sort"
	"time"
)

// WeeklyTemplate maps a weekday to its ordered slot start hours in the business timezone.
// A weekday without hours is closed.
type WeeklyTemplate map[time.Weekday][]int

// NewWeeklyTemplate copies hours and sorts them per weekday
func NewWeeklyTemplate(hours map[time.Weekday][]int) WeeklyTemplate {
	t := make(WeeklyTemplate, len(hours))
	for wd, hs := range hours {
		sorted := append([]int(nil), hs...)
		sort.Ints(sorted)
		t[wd] = sorted
	}
	return t
}

// HoursFor returns the start hours for the weekday
func (t WeeklyTemplate) HoursFor(wd time.Weekday) []int {
	return t[wd]
}

// HolidayCalendar is a set of closed dates (YYYY-MM-DD)
type HolidayCalendar map[string]struct{}

func NewHolidayCalendar(dates []string) HolidayCalendar {
	c := make(HolidayCalendar, len(dates))
	for _, d := range dates {
		c[d] = struct{}{}
	}
	return c
}

// Contains returns true if the date is a holiday
func (c HolidayCalendar) Contains(date string) bool {
	_, ok := c[date]
	return ok
}
