package calendar

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// GridSize is the number of cells in every month grid: six weeks of seven days.
	GridSize = 42

	minYear = 1
	maxYear = 9999
)

// Event is a dated calendar entry. Time is an optional HH:MM display field
// used only to order events within a day.
type Event struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Date     string `json:"date" yaml:"date"`
	Time     string `json:"time,omitempty" yaml:"time,omitempty"`
	Priority string `json:"priority,omitempty" yaml:"priority,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Cell is one day of a month grid.
type Cell struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
	IsToday        bool      `json:"isToday"`
	Events         []Event   `json:"events"`
}

// MonthGrid is the 6x7 projection of a month, Sunday first.
type MonthGrid struct {
	Year    int                     `json:"year"`
	Month   time.Month              `json:"month"`
	Cells   [GridSize]Cell          `json:"cells"`
	Skipped []MalformedEventWarning `json:"skipped,omitempty"`
}

// Weeks returns the cells as six rows of seven days.
func (g *MonthGrid) Weeks() [6][7]Cell {
	var w [6][7]Cell
	for i, c := range g.Cells {
		w[i/7][i%7] = c
	}
	return w
}

// CheckMonth rejects months outside 1-12 and years outside 1-9999.
func CheckMonth(year int, month time.Month) error {
	if month < time.January || month > time.December || year < minYear || year > maxYear {
		return &InvalidDateRangeError{Year: year, Month: int(month)}
	}
	return nil
}

// BuildMonthGrid lays out month of year as 42 cells: the tail of the previous
// month up to the first weekday, the month itself, then the head of the next
// month. Events land in the cell of their calendar day, ordered by Time with
// untimed events first; equal times keep their input order. An event with an
// unreadable date or time is left out and reported in Skipped.
//
// today decides the IsToday flag, which is only ever set on a cell of the
// month itself; no clock is read.
func BuildMonthGrid(year int, month time.Month, events []Event, today time.Time) (*MonthGrid, error) {
	if err := CheckMonth(year, month); err != nil {
		return nil, err
	}

	g := &MonthGrid{Year: year, Month: month}
	start, _ := MonthRange(year, month)
	for i := range g.Cells {
		d := start.AddDate(0, 0, i)
		inMonth := d.Month() == month
		g.Cells[i] = Cell{
			Date:           d,
			IsCurrentMonth: inMonth,
			IsToday:        inMonth && SameDay(d, today),
			Events:         []Event{},
		}
	}

	clocks := make(map[int][]time.Duration)
	for _, ev := range events {
		day, err := ParseDay(ev.Date)
		if err != nil {
			g.skip(ev, ev.Date, err)
			continue
		}
		var clock time.Duration = -1
		if ev.Time != "" {
			if clock, err = ParseClock(ev.Time); err != nil {
				g.skip(ev, ev.Time, err)
				continue
			}
		}
		idx := int(day.Sub(start).Hours() / 24)
		if idx < 0 || idx >= GridSize {
			continue
		}
		g.Cells[idx].Events = append(g.Cells[idx].Events, ev)
		clocks[idx] = append(clocks[idx], clock)
	}

	for idx, cs := range clocks {
		if len(cs) < 2 {
			continue
		}
		sort.Stable(byClock{events: g.Cells[idx].Events, clocks: cs})
	}
	return g, nil
}

func (g *MonthGrid) skip(ev Event, value string, err error) {
	w := MalformedEventWarning{EventID: ev.ID, Value: value, Err: err}
	g.Skipped = append(g.Skipped, w)
	log.WithFields(log.Fields{
		"eventId": ev.ID,
		"value":   value,
		"year":    g.Year,
		"month":   int(g.Month),
	}).Warnf("skipping malformed calendar event: %v", err)
}

// byClock sorts a day's events by time of day; -1 marks an untimed event.
type byClock struct {
	events []Event
	clocks []time.Duration
}

func (s byClock) Len() int           { return len(s.events) }
func (s byClock) Less(i, j int) bool { return s.clocks[i] < s.clocks[j] }
func (s byClock) Swap(i, j int) {
	s.events[i], s.events[j] = s.events[j], s.events[i]
	s.clocks[i], s.clocks[j] = s.clocks[j], s.clocks[i]
}
