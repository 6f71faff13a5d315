package dto

import "myplanner/kanban"

type CreateBoardRequest struct {
	BoardName string   `json:"boardname" binding:"required"`
	Is_group  string   `json:"is_group" binding:"omitempty,oneof=0 1"`
	Columns   []string `json:"columns" binding:"omitempty,dive,required"`
}

// DropLocation is one end of a drag: the column (droppable) and the slot index.
type DropLocation struct {
	DroppableID string `json:"droppableId" binding:"required"`
	Index       *int   `json:"index" binding:"required"`
}

// MoveTaskRequest mirrors the drop result a drag-and-drop list reports.
// A null destination means the card was dropped outside every column.
type MoveTaskRequest struct {
	DraggableID string        `json:"draggableId"`
	Source      DropLocation  `json:"source" binding:"required"`
	Destination *DropLocation `json:"destination"`
}

func (r MoveTaskRequest) Move() kanban.Move {
	mv := kanban.Move{
		TaskID: r.DraggableID,
		Source: kanban.Location{ColumnID: r.Source.DroppableID, Index: *r.Source.Index},
	}
	if r.Destination != nil && r.Destination.Index != nil {
		mv.Destination = &kanban.Location{ColumnID: r.Destination.DroppableID, Index: *r.Destination.Index}
	}
	return mv
}

type ColumnResponse struct {
	ColumnID string         `json:"columnId"`
	Title    string         `json:"title"`
	Tasks    []TaskResponse `json:"tasks"`
}

type BoardResponse struct {
	BoardID   string           `json:"boardId"`
	BoardName string           `json:"boardName"`
	BoardType string           `json:"type"`
	DeepLink  string           `json:"deep_link,omitempty"`
	Columns   []ColumnResponse `json:"columns"`
	UpdatedAt string           `json:"updatedAt"`
}
