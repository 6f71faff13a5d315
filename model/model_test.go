package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myplanner/kanban"
)

func TestBoardKanbanRoundTrip(t *testing.T) {
	b := &Board{
		BoardID: "b1",
		Columns: []Column{
			{ColumnID: "todo", Title: "To do", TaskIDs: []string{"t1", "t2"}},
			{ColumnID: "done", Title: "Done"},
		},
	}

	kb := b.Kanban()
	assert.Equal(t, []string{"todo", "done"}, kb.ColumnOrder)

	next, err := kanban.ApplyMove(kb, kanban.Move{
		Source:      kanban.Location{ColumnID: "todo", Index: 1},
		Destination: &kanban.Location{ColumnID: "done", Index: 0},
	})
	require.NoError(t, err)

	out := b.WithKanban(next)
	assert.Equal(t, "b1", out.BoardID)
	assert.Equal(t, []Column{
		{ColumnID: "todo", Title: "To do", TaskIDs: []string{"t1"}},
		{ColumnID: "done", Title: "Done", TaskIDs: []string{"t2"}},
	}, out.Columns)
	assert.Equal(t, []string{"t1", "t2"}, b.Columns[0].TaskIDs, "original board untouched")
}

func TestBoardCanAccess(t *testing.T) {
	private := &Board{BoardType: "private", CreatedBy: "u1"}
	assert.True(t, private.CanAccess("u1"))
	assert.False(t, private.CanAccess("u2"))

	group := &Board{BoardType: "group", CreatedBy: "u1"}
	assert.True(t, group.CanAccess("u2"))
}

func TestTaskReminderOnCalendar(t *testing.T) {
	task := Tasks{TaskID: "t1", TaskName: "Pay rent", CreatedBy: "u1"}
	due := time.Date(2023, time.July, 31, 23, 30, 0, 0, time.UTC)

	n := task.Reminder("n1", due, nil, "monthly")
	assert.Equal(t, "t1", n.TaskID)
	assert.Equal(t, "u1", n.UserID)
	assert.Equal(t, "monthly", *n.RecurringPattern)
	assert.Equal(t, "0", n.Send)

	ev := n.Calendar(time.UTC)
	assert.Equal(t, "2023-07-31", ev.Date)
	assert.Equal(t, "23:30", ev.Time)
	assert.Equal(t, "reminder", ev.Type)

	// Half an hour later in UTC+7 is already August.
	ev = n.Calendar(time.FixedZone("UTC+7", 7*60*60))
	assert.Equal(t, "2023-08-01", ev.Date)
	assert.Equal(t, "06:30", ev.Time)

	assert.Nil(t, task.Reminder("n2", due, nil, "").RecurringPattern)
}
