package kanban

import "fmt"

// Location addresses a slot inside a column.
type Location struct {
	ColumnID string `json:"droppableId"`
	Index    int    `json:"index"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s[%d]", l.ColumnID, l.Index)
}

// Move is the outcome of a drag gesture. A nil Destination means the card
// was dropped outside every column.
type Move struct {
	// TaskID is optional. When set it must match the task found at Source.
	TaskID      string
	Source      Location
	Destination *Location
}

// Cancelled reports whether the drop had no destination.
func (m Move) Cancelled() bool {
	return m.Destination == nil
}

// ApplyMove relocates one task and returns the resulting board.
//
// A cancelled drop or a drop back onto its own slot returns b itself, so
// callers can compare pointers to skip a write or a re-render. Otherwise the
// returned board is new: the touched columns get fresh slices and the other
// columns are shared with b. Within one column the destination index is read
// against the list with the moving task already removed. b is never modified.
func ApplyMove(b *Board, mv Move) (*Board, error) {
	if mv.Cancelled() {
		return b, nil
	}
	dst := *mv.Destination
	if dst.ColumnID == mv.Source.ColumnID && dst.Index == mv.Source.Index {
		return b, nil
	}

	src, ok := b.Columns[mv.Source.ColumnID]
	if !ok {
		return b, &InvalidMoveError{Move: mv, Reason: fmt.Sprintf("unknown source column %q", mv.Source.ColumnID)}
	}
	if mv.Source.Index < 0 || mv.Source.Index >= len(src.TaskIDs) {
		return b, &InvalidMoveError{Move: mv, Reason: fmt.Sprintf("source index %d out of range [0,%d)", mv.Source.Index, len(src.TaskIDs))}
	}
	taskID := src.TaskIDs[mv.Source.Index]
	if mv.TaskID != "" && mv.TaskID != taskID {
		return b, &InvalidMoveError{Move: mv, Reason: fmt.Sprintf("expected task %q at source, found %q", mv.TaskID, taskID)}
	}

	out := &Board{
		ColumnOrder: b.ColumnOrder,
		Columns:     make(map[string]Column, len(b.Columns)),
	}
	for id, c := range b.Columns {
		out.Columns[id] = c
	}

	if dst.ColumnID == mv.Source.ColumnID {
		rest := remove(src.TaskIDs, mv.Source.Index)
		if dst.Index < 0 || dst.Index > len(rest) {
			return b, &InvalidMoveError{Move: mv, Reason: fmt.Sprintf("destination index %d out of range [0,%d]", dst.Index, len(rest))}
		}
		src.TaskIDs = insert(rest, dst.Index, taskID)
		out.Columns[mv.Source.ColumnID] = src
		return out, nil
	}

	target, ok := b.Columns[dst.ColumnID]
	if !ok {
		return b, &InvalidMoveError{Move: mv, Reason: fmt.Sprintf("unknown destination column %q", dst.ColumnID)}
	}
	if dst.Index < 0 || dst.Index > len(target.TaskIDs) {
		return b, &InvalidMoveError{Move: mv, Reason: fmt.Sprintf("destination index %d out of range [0,%d]", dst.Index, len(target.TaskIDs))}
	}
	src.TaskIDs = remove(src.TaskIDs, mv.Source.Index)
	target.TaskIDs = insert(target.TaskIDs, dst.Index, taskID)
	out.Columns[mv.Source.ColumnID] = src
	out.Columns[dst.ColumnID] = target
	return out, nil
}

// remove returns a new slice without ids[i].
func remove(ids []string, i int) []string {
	out := make([]string, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	return append(out, ids[i+1:]...)
}

// insert returns a new slice with id placed at position i.
func insert(ids []string, i int, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:i]...)
	out = append(out, id)
	return append(out, ids[i:]...)
}
