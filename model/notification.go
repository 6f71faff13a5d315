package model

import (
	"time"

	"myplanner/calendar"
)

type Notification struct {
	NotificationID   string     `firestore:"notificationid,omitempty"`
	TaskID           string     `firestore:"taskid,omitempty"`
	UserID           string     `firestore:"userid,omitempty"`
	Title            string     `firestore:"title,omitempty"`
	DueDate          *time.Time `firestore:"duedate,omitempty"`
	BeforeDueDate    *time.Time `firestore:"beforeduedate,omitempty"`
	RecurringPattern *string    `firestore:"pattern,omitempty"`
	Snooze           *time.Time `firestore:"snooze,omitempty"`
	Send             string     `firestore:"send,omitempty"`
	Updatedat        time.Time  `firestore:"updatedat,omitempty"`
}

// Calendar shows the reminder's due date as a calendar event in loc.
func (n Notification) Calendar(loc *time.Location) calendar.Event {
	ev := calendar.Event{ID: n.NotificationID, Title: n.Title, Type: "reminder"}
	if n.DueDate != nil {
		due := n.DueDate.In(loc)
		ev.Date = calendar.FormatDay(due)
		ev.Time = due.Format("15:04")
	}
	return ev
}
