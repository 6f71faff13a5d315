package model

import (
	"time"

	"myplanner/calendar"
)

// Event is a calendar entry. Date is stored as YYYY-MM-DD so range queries
// can compare it as a string.
type Event struct {
	EventID   string    `firestore:"eventid,omitempty"`
	UserID    string    `firestore:"userid,omitempty"`
	Title     string    `firestore:"title,omitempty"`
	Date      string    `firestore:"date,omitempty"`
	Time      string    `firestore:"time,omitempty"`
	Priority  string    `firestore:"priority,omitempty"`
	Type      string    `firestore:"type,omitempty"`
	CreatedAt time.Time `firestore:"createdat,omitempty"`
}

func (e Event) Calendar() calendar.Event {
	return calendar.Event{
		ID:       e.EventID,
		Title:    e.Title,
		Date:     e.Date,
		Time:     e.Time,
		Priority: e.Priority,
		Type:     e.Type,
	}
}
