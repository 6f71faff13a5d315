package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myplanner/kanban"
)

func TestMoveTaskRequestMove(t *testing.T) {
	var req MoveTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"draggableId": "t1",
		"source": {"droppableId": "todo", "index": 0},
		"destination": {"droppableId": "done", "index": 2}
	}`), &req))

	assert.Equal(t, kanban.Move{
		TaskID:      "t1",
		Source:      kanban.Location{ColumnID: "todo", Index: 0},
		Destination: &kanban.Location{ColumnID: "done", Index: 2},
	}, req.Move())
}

func TestMoveTaskRequestCancelled(t *testing.T) {
	var req MoveTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"source": {"droppableId": "todo", "index": 1},
		"destination": null
	}`), &req))

	mv := req.Move()
	assert.True(t, mv.Cancelled())
	assert.Equal(t, 1, mv.Source.Index)
}
