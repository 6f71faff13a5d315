package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"myplanner/model"
)

// MemoryStore keeps boards, tasks, events and reminders in process memory.
// It backs STORAGE_BACKEND=memory and the tests.
type MemoryStore struct {
	mu            sync.RWMutex
	boards        map[string]model.Board
	tasks         map[string]model.Tasks
	events        map[string]model.Event
	notifications map[string]model.Notification
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		boards:        make(map[string]model.Board),
		tasks:         make(map[string]model.Tasks),
		events:        make(map[string]model.Event),
		notifications: make(map[string]model.Notification),
	}
}

func (m *MemoryStore) CreateBoard(_ context.Context, board model.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.boards[board.BoardID]; ok {
		return fmt.Errorf("board %s already exists", board.BoardID)
	}
	m.boards[board.BoardID] = cloneBoard(board)
	return nil
}

func (m *MemoryStore) GetBoard(_ context.Context, boardID string) (*model.Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.boards[boardID]
	if !ok {
		return nil, ErrBoardNotFound
	}
	out := cloneBoard(b)
	return &out, nil
}

func (m *MemoryStore) UpdateBoard(_ context.Context, boardID string, fn BoardMutation) (*model.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.boards[boardID]
	if !ok {
		return nil, ErrBoardNotFound
	}
	cur := cloneBoard(b)
	next, err := fn(&cur)
	if err != nil {
		return nil, err
	}
	if next == &cur {
		return next, nil
	}
	next.UpdatedAt = time.Now()
	m.boards[boardID] = cloneBoard(*next)
	return next, nil
}

func (m *MemoryStore) CreateTask(_ context.Context, task model.Tasks, columnID string, reminder *model.Notification) (*model.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.boards[task.BoardID]
	if !ok {
		return nil, ErrBoardNotFound
	}
	next, err := appendTask(cloneBoard(b), columnID, task.TaskID)
	if err != nil {
		return nil, err
	}
	m.boards[task.BoardID] = next
	m.tasks[task.TaskID] = task
	if reminder != nil {
		m.notifications[reminder.NotificationID] = *reminder
	}
	out := cloneBoard(next)
	return &out, nil
}

func (m *MemoryStore) ListTasks(_ context.Context, boardID string) ([]model.Tasks, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Tasks
	for _, t := range m.tasks {
		if t.BoardID == boardID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskID < out[j].TaskID })
	return out, nil
}

func (m *MemoryStore) CreateEvent(_ context.Context, event model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[event.EventID] = event
	return nil
}

func (m *MemoryStore) ListEvents(_ context.Context, userID, from, to string) ([]model.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Event
	for _, e := range m.events {
		if e.UserID == userID && e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	// Creation order stands in for the document order Firestore returns.
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) ListReminders(_ context.Context, userID string, from, to time.Time) ([]model.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Notification
	for _, n := range m.notifications {
		if n.UserID != userID || n.DueDate == nil {
			continue
		}
		if !n.DueDate.Before(from) && n.DueDate.Before(to) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(*out[j].DueDate) })
	return out, nil
}

// appendTask adds taskID to the end of columnID.
func appendTask(b model.Board, columnID, taskID string) (model.Board, error) {
	for i, c := range b.Columns {
		if c.ColumnID == columnID {
			b.Columns[i].TaskIDs = append(append([]string(nil), c.TaskIDs...), taskID)
			return b, nil
		}
	}
	return b, fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
}

func cloneBoard(b model.Board) model.Board {
	cols := make([]model.Column, len(b.Columns))
	for i, c := range b.Columns {
		c.TaskIDs = append([]string(nil), c.TaskIDs...)
		cols[i] = c
	}
	b.Columns = cols
	return b
}
