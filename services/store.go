package services

import (
	"context"
	"time"

	"myplanner/model"
)

// BoardMutation receives the stored board and returns the board to store.
// Returning the same pointer means nothing changed and skips the write.
type BoardMutation func(cur *model.Board) (*model.Board, error)

// BoardStore persists boards together with the tasks they order.
type BoardStore interface {
	CreateBoard(ctx context.Context, board model.Board) error
	GetBoard(ctx context.Context, boardID string) (*model.Board, error)
	// UpdateBoard runs fn as one atomic read-modify-write.
	UpdateBoard(ctx context.Context, boardID string, fn BoardMutation) (*model.Board, error)
	// CreateTask stores task, appends its id to columnID and stores the
	// optional reminder, all in one step.
	CreateTask(ctx context.Context, task model.Tasks, columnID string, reminder *model.Notification) (*model.Board, error)
	ListTasks(ctx context.Context, boardID string) ([]model.Tasks, error)
}

// EventStore persists calendar events and exposes task reminders by due date.
type EventStore interface {
	CreateEvent(ctx context.Context, event model.Event) error
	// ListEvents returns the user's events dated from..to inclusive (YYYY-MM-DD).
	ListEvents(ctx context.Context, userID, from, to string) ([]model.Event, error)
	// ListReminders returns reminders due in [from, to).
	ListReminders(ctx context.Context, userID string, from, to time.Time) ([]model.Notification, error)
}
