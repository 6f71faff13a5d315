package model

import (
	"time"

	"myplanner/kanban"
)

type Board struct {
	BoardID   string    `firestore:"boardid,omitempty"`
	BoardName string    `firestore:"boardname,omitempty"`
	BoardType string    `firestore:"type,omitempty"` // "private" or "group"
	DeepLink  string    `firestore:"link,omitempty"`
	Columns   []Column  `firestore:"columns"`
	CreatedAt time.Time `firestore:"createdat,omitempty"`
	CreatedBy string    `firestore:"createdby,omitempty"`
	UpdatedAt time.Time `firestore:"updatedat,omitempty"`
}

// Column keeps its task ids in display order.
type Column struct {
	ColumnID string   `firestore:"columnid"`
	Title    string   `firestore:"title"`
	TaskIDs  []string `firestore:"taskids"`
}

// Kanban converts the stored columns into a board the reducer can work on.
func (b *Board) Kanban() *kanban.Board {
	cols := make([]kanban.Column, 0, len(b.Columns))
	for _, c := range b.Columns {
		cols = append(cols, kanban.Column{ID: c.ColumnID, Title: c.Title, TaskIDs: c.TaskIDs})
	}
	return kanban.NewBoard(cols...)
}

// WithKanban returns a copy of b whose columns follow kb.
func (b *Board) WithKanban(kb *kanban.Board) *Board {
	out := *b
	out.Columns = make([]Column, 0, len(kb.ColumnOrder))
	for _, id := range kb.ColumnOrder {
		c := kb.Columns[id]
		out.Columns = append(out.Columns, Column{ColumnID: id, Title: c.Title, TaskIDs: c.TaskIDs})
	}
	return &out
}

// CanAccess reports whether userID may read and change the board. Group
// boards are shared through their deep link.
func (b *Board) CanAccess(userID string) bool {
	return b.BoardType == "group" || b.CreatedBy == userID
}
