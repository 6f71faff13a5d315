package kanban

import "fmt"

// Column is a named, ordered bucket of task ids.
type Column struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	TaskIDs []string `json:"taskIds" yaml:"tasks"`
}

// Board maps column ids to columns. ColumnOrder is the render order of the
// columns and is never changed by ApplyMove.
type Board struct {
	ColumnOrder []string          `json:"columnOrder"`
	Columns     map[string]Column `json:"columns"`
}

// NewBoard builds a board whose column order follows the arguments.
func NewBoard(columns ...Column) *Board {
	b := &Board{
		ColumnOrder: make([]string, 0, len(columns)),
		Columns:     make(map[string]Column, len(columns)),
	}
	for _, c := range columns {
		b.ColumnOrder = append(b.ColumnOrder, c.ID)
		b.Columns[c.ID] = c
	}
	return b
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	out := &Board{
		ColumnOrder: append([]string(nil), b.ColumnOrder...),
		Columns:     make(map[string]Column, len(b.Columns)),
	}
	for id, c := range b.Columns {
		c.TaskIDs = append([]string(nil), c.TaskIDs...)
		out.Columns[id] = c
	}
	return out
}

// TaskIDs lists every task id on the board in render order.
func (b *Board) TaskIDs() []string {
	var ids []string
	for _, colID := range b.ColumnOrder {
		ids = append(ids, b.Columns[colID].TaskIDs...)
	}
	return ids
}

// Locate finds the column and index holding taskID.
func (b *Board) Locate(taskID string) (Location, bool) {
	for _, colID := range b.ColumnOrder {
		for i, id := range b.Columns[colID].TaskIDs {
			if id == taskID {
				return Location{ColumnID: colID, Index: i}, true
			}
		}
	}
	return Location{}, false
}

// Validate checks that the column order and the column map agree and that
// every task id sits in exactly one column position.
func (b *Board) Validate() error {
	if len(b.ColumnOrder) != len(b.Columns) {
		return &InvalidBoardError{Reason: fmt.Sprintf("column order lists %d columns, board has %d", len(b.ColumnOrder), len(b.Columns))}
	}
	seenCols := make(map[string]struct{}, len(b.ColumnOrder))
	seenTasks := make(map[string]string)
	for _, colID := range b.ColumnOrder {
		if _, dup := seenCols[colID]; dup {
			return &InvalidBoardError{Reason: fmt.Sprintf("column %q listed twice", colID)}
		}
		seenCols[colID] = struct{}{}
		col, ok := b.Columns[colID]
		if !ok {
			return &InvalidBoardError{Reason: fmt.Sprintf("column %q missing", colID)}
		}
		for _, id := range col.TaskIDs {
			if prev, dup := seenTasks[id]; dup {
				return &InvalidBoardError{Reason: fmt.Sprintf("task %q in both %q and %q", id, prev, colID)}
			}
			seenTasks[id] = colID
		}
	}
	return nil
}
