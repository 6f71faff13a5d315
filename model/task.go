package model

import (
	"time"
)

// Tasks is a card on a board. Its position lives in the board's columns,
// not on the task.
type Tasks struct {
	TaskID      string    `firestore:"taskid,omitempty"`
	BoardID     string    `firestore:"boardid,omitempty"`
	TaskName    string    `firestore:"taskname,omitempty"`
	Description string    `firestore:"description,omitempty"`
	Status      string    `firestore:"status,omitempty"`
	Priority    string    `firestore:"priority,omitempty"` // "1" = low, "2" = medium, "3" = high
	CreatedBy   string    `firestore:"createdby,omitempty"`
	CreatedAt   time.Time `firestore:"createdat,omitempty"`
	UpdatedAt   time.Time `firestore:"updatedat,omitempty"`
}

// Reminder returns an unsent reminder for the task owned by its creator.
func (t Tasks) Reminder(notificationID string, due time.Time, before *time.Time, pattern string) Notification {
	n := Notification{
		NotificationID: notificationID,
		TaskID:         t.TaskID,
		UserID:         t.CreatedBy,
		Title:          t.TaskName,
		DueDate:        &due,
		BeforeDueDate:  before,
		Send:           "0",
		Updatedat:      t.UpdatedAt,
	}
	if pattern != "" {
		n.RecurringPattern = &pattern
	}
	return n
}
