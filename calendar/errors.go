package calendar

import "fmt"

// InvalidDateRangeError is returned for a month or year no grid can be built for.
type InvalidDateRangeError struct {
	Year  int
	Month int
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid month %d/%d: month must be 1-12 and year %d-%d", e.Month, e.Year, minYear, maxYear)
}

// MalformedEventWarning describes an event left off the grid because its
// date or time could not be read.
type MalformedEventWarning struct {
	EventID string `json:"eventId"`
	Value   string `json:"value"`
	Err     error  `json:"-"`
}

func (w MalformedEventWarning) Error() string {
	return fmt.Sprintf("event %s skipped: %v", w.EventID, w.Err)
}

func (w MalformedEventWarning) Unwrap() error {
	return w.Err
}
