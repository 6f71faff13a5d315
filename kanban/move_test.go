package kanban

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func to(col string, idx int) *Location {
	return &Location{ColumnID: col, Index: idx}
}

func sampleBoard() *Board {
	return NewBoard(
		Column{ID: "todo", Title: "To do", TaskIDs: []string{"t1", "t2"}},
		Column{ID: "doing", Title: "In progress", TaskIDs: []string{"a", "b", "c"}},
		Column{ID: "done", Title: "Done", TaskIDs: []string{"t3"}},
	)
}

func TestApplyMoveReorderWithinColumn(t *testing.T) {
	b := sampleBoard()

	got, err := ApplyMove(b, Move{Source: Location{"doing", 0}, Destination: to("doing", 2)})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c", "a"}, got.Columns["doing"].TaskIDs)
	assert.Equal(t, []string{"a", "b", "c"}, b.Columns["doing"].TaskIDs, "input board must not change")
}

func TestApplyMoveReorderUpwards(t *testing.T) {
	got, err := ApplyMove(sampleBoard(), Move{Source: Location{"doing", 2}, Destination: to("doing", 0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, got.Columns["doing"].TaskIDs)
}

func TestApplyMoveAcrossColumns(t *testing.T) {
	b := sampleBoard()

	got, err := ApplyMove(b, Move{TaskID: "t1", Source: Location{"todo", 0}, Destination: to("done", 1)})
	require.NoError(t, err)

	assert.Equal(t, []string{"t2"}, got.Columns["todo"].TaskIDs)
	assert.Equal(t, []string{"t3", "t1"}, got.Columns["done"].TaskIDs)
	assert.Equal(t, []string{"t1", "t2"}, b.Columns["todo"].TaskIDs)
	assert.Equal(t, []string{"t3"}, b.Columns["done"].TaskIDs)
	assert.Equal(t, b.ColumnOrder, got.ColumnOrder)
}

func TestApplyMoveIntoEmptyColumn(t *testing.T) {
	b := NewBoard(Column{ID: "todo", TaskIDs: []string{"x"}}, Column{ID: "done"})

	got, err := ApplyMove(b, Move{Source: Location{"todo", 0}, Destination: to("done", 0)})
	require.NoError(t, err)
	assert.Empty(t, got.Columns["todo"].TaskIDs)
	assert.Equal(t, []string{"x"}, got.Columns["done"].TaskIDs)
}

func TestApplyMoveNoOpReturnsSameBoard(t *testing.T) {
	b := sampleBoard()

	got, err := ApplyMove(b, Move{Source: Location{"doing", 1}, Destination: to("doing", 1)})
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestApplyMoveCancelledDropReturnsSameBoard(t *testing.T) {
	b := sampleBoard()

	got, err := ApplyMove(b, Move{Source: Location{"todo", 0}})
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestApplyMoveSharesUntouchedColumns(t *testing.T) {
	b := sampleBoard()

	got, err := ApplyMove(b, Move{Source: Location{"todo", 0}, Destination: to("todo", 1)})
	require.NoError(t, err)

	assert.Same(t, &b.Columns["doing"].TaskIDs[0], &got.Columns["doing"].TaskIDs[0])
	assert.NotSame(t, &b.Columns["todo"].TaskIDs[0], &got.Columns["todo"].TaskIDs[0])
}

func TestApplyMoveRejectsInvalidMoves(t *testing.T) {
	tests := []struct {
		name string
		move Move
	}{
		{"unknown source column", Move{Source: Location{"nope", 0}, Destination: to("todo", 0)}},
		{"unknown destination column", Move{Source: Location{"todo", 0}, Destination: to("nope", 0)}},
		{"negative source index", Move{Source: Location{"todo", -1}, Destination: to("done", 0)}},
		{"source index past end", Move{Source: Location{"todo", 2}, Destination: to("done", 0)}},
		{"destination past end across columns", Move{Source: Location{"todo", 0}, Destination: to("done", 2)}},
		{"destination past end within column", Move{Source: Location{"doing", 0}, Destination: to("doing", 3)}},
		{"negative destination", Move{Source: Location{"todo", 0}, Destination: to("done", -1)}},
		{"stale task id", Move{TaskID: "t2", Source: Location{"todo", 0}, Destination: to("done", 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBoard()
			before := b.Clone()

			got, err := ApplyMove(b, tt.move)

			var moveErr *InvalidMoveError
			require.ErrorAs(t, err, &moveErr)
			assert.Equal(t, tt.move.Source, moveErr.Move.Source)
			assert.Same(t, b, got)
			assert.Equal(t, before, b)
		})
	}
}

func TestApplyMoveKeepsTaskMultiset(t *testing.T) {
	b := sampleBoard()
	want := sortedIDs(b)

	moves := []Move{
		{Source: Location{"todo", 0}, Destination: to("doing", 3)},
		{Source: Location{"doing", 3}, Destination: to("doing", 0)},
		{Source: Location{"done", 0}, Destination: to("todo", 0)},
		{Source: Location{"doing", 0}, Destination: to("done", 0)},
		{Source: Location{"todo", 1}},
		{Source: Location{"doing", 2}, Destination: to("doing", 2)},
		{Source: Location{"doing", 0}, Destination: to("todo", 2)},
	}
	for i, mv := range moves {
		next, err := ApplyMove(b, mv)
		require.NoError(t, err, "move %d", i)
		require.NoError(t, next.Validate(), "move %d", i)
		assert.Equal(t, want, sortedIDs(next), "move %d", i)
		b = next
	}
}

func sortedIDs(b *Board) []string {
	ids := b.TaskIDs()
	sort.Strings(ids)
	return ids
}
