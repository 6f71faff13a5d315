package calendar

import (
	"fmt"
	"strings"
	"time"
)

const (
	dayLayout  = "2006-01-02"
	timeLayout = "15:04"
)

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month normalises to the last day of month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of month, Sunday being 0.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// ShiftMonth moves year/month by delta months, as the previous/next buttons do.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// MonthRange returns the first and last day shown on the grid of month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	first = first.AddDate(0, 0, -int(first.Weekday()))
	return first, first.AddDate(0, 0, GridSize-1)
}

// ParseDay reads an event date. Plain YYYY-MM-DD dates are taken as is;
// RFC 3339 timestamps are reduced to the calendar day in their own offset.
// The result is midnight UTC of that day.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(dayLayout, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return dayOf(ts), nil
}

// ParseClock validates an HH:MM time of day.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// SameDay reports whether a and b fall on the same calendar day, each read in
// its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDay renders t as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
