package kanban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, sampleBoard().Validate())

	dup := sampleBoard()
	c := dup.Columns["done"]
	c.TaskIDs = append(c.TaskIDs, "t1")
	dup.Columns["done"] = c

	var boardErr *InvalidBoardError
	require.ErrorAs(t, dup.Validate(), &boardErr)
	assert.Contains(t, boardErr.Reason, `"t1"`)

	missing := sampleBoard()
	missing.ColumnOrder = append(missing.ColumnOrder[:2], "ghost")
	require.ErrorAs(t, missing.Validate(), &boardErr)

	extra := sampleBoard()
	extra.Columns["archive"] = Column{ID: "archive"}
	require.ErrorAs(t, extra.Validate(), &boardErr)
}

func TestLocate(t *testing.T) {
	b := sampleBoard()

	loc, ok := b.Locate("c")
	require.True(t, ok)
	assert.Equal(t, Location{ColumnID: "doing", Index: 2}, loc)

	_, ok = b.Locate("zzz")
	assert.False(t, ok)
}

func TestCloneIsDeep(t *testing.T) {
	b := sampleBoard()
	cp := b.Clone()
	cp.Columns["todo"].TaskIDs[0] = "changed"
	cp.ColumnOrder[0] = "changed"

	assert.Equal(t, "t1", b.Columns["todo"].TaskIDs[0])
	assert.Equal(t, "todo", b.ColumnOrder[0])
}

func TestTaskIDsFollowColumnOrder(t *testing.T) {
	assert.Equal(t, []string{"t1", "t2", "a", "b", "c", "t3"}, sampleBoard().TaskIDs())
}
