package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"myplanner/calendar"
	"myplanner/model"
)

// CalendarService builds month grids from stored events and task reminders.
type CalendarService struct {
	store    EventStore
	location *time.Location
	logger   *log.Logger
	now      func() time.Time
}

// NewCalendarService returns a service that reads reminder due dates and
// the current day in loc.
func NewCalendarService(store EventStore, loc *time.Location, logger *log.Logger) *CalendarService {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarService{store: store, location: loc, logger: logger, now: time.Now}
}

// Today is the current calendar day in the service's location.
func (s *CalendarService) Today() time.Time {
	return s.now().In(s.location)
}

// Month returns the grid for month of year for userID.
func (s *CalendarService) Month(ctx context.Context, userID string, year int, month time.Month, today time.Time) (*calendar.MonthGrid, error) {
	if err := calendar.CheckMonth(year, month); err != nil {
		return nil, err
	}
	first, last := calendar.MonthRange(year, month)

	stored, err := s.store.ListEvents(ctx, userID, calendar.FormatDay(first), calendar.FormatDay(last))
	if err != nil {
		return nil, err
	}
	from := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, s.location)
	to := time.Date(last.Year(), last.Month(), last.Day()+1, 0, 0, 0, 0, s.location)
	reminders, err := s.store.ListReminders(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	events := make([]calendar.Event, 0, len(stored)+len(reminders))
	for _, e := range stored {
		events = append(events, e.Calendar())
	}
	for _, n := range reminders {
		events = append(events, n.Calendar(s.location))
	}

	grid, err := calendar.BuildMonthGrid(year, month, events, today)
	if err != nil {
		return nil, err
	}
	if len(grid.Skipped) > 0 {
		s.logger.WithFields(log.Fields{"userId": userID, "skipped": len(grid.Skipped)}).Warn("calendar month built with skipped events")
	}
	return grid, nil
}

// NewEvent describes an event to add. Date is YYYY-MM-DD, Time optional HH:MM.
type NewEvent struct {
	Title    string
	Date     string
	Time     string
	Priority string
	Type     string
}

func (s *CalendarService) CreateEvent(ctx context.Context, userID string, in NewEvent) (*model.Event, error) {
	day, err := calendar.ParseDay(in.Date)
	if err != nil {
		return nil, err
	}
	if in.Time != "" {
		if _, err := calendar.ParseClock(in.Time); err != nil {
			return nil, err
		}
	}
	ev := model.Event{
		EventID:   uuid.New().String(),
		UserID:    userID,
		Title:     in.Title,
		Date:      calendar.FormatDay(day),
		Time:      in.Time,
		Priority:  in.Priority,
		Type:      in.Type,
		CreatedAt: s.now(),
	}
	if err := s.store.CreateEvent(ctx, ev); err != nil {
		return nil, err
	}
	s.logger.WithFields(log.Fields{"eventId": ev.EventID, "userId": userID, "date": ev.Date}).Info("calendar event created")
	return &ev, nil
}
