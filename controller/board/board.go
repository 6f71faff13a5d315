package board

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"myplanner/controller"
	"myplanner/dto"
	"myplanner/model"
	"myplanner/services"
)

func GetBoard(c *gin.Context, boards *services.BoardService) {
	userId := c.MustGet("userId").(string)

	board, tasks, err := boards.GetBoard(c.Request.Context(), userId, c.Param("boardid"))
	if err != nil {
		controller.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBoardResponse(board, tasks))
}

// MoveTask applies the drop result of a drag gesture to the board.
func MoveTask(c *gin.Context, boards *services.BoardService) {
	userId := c.MustGet("userId").(string)
	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := c.Request.Context()
	boardID := c.Param("boardid")
	updated, changed, err := boards.MoveTask(ctx, userId, boardID, req.Move())
	if err != nil {
		controller.AbortWithError(c, err)
		return
	}

	tasks, err := boards.TaskIndex(ctx, boardID)
	if err != nil {
		controller.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"changed": changed,
		"board":   toBoardResponse(updated, tasks),
	})
}

func toBoardResponse(b *model.Board, tasks map[string]model.Tasks) dto.BoardResponse {
	resp := dto.BoardResponse{
		BoardID:   b.BoardID,
		BoardName: b.BoardName,
		BoardType: b.BoardType,
		DeepLink:  b.DeepLink,
		Columns:   make([]dto.ColumnResponse, 0, len(b.Columns)),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
	for _, col := range b.Columns {
		cr := dto.ColumnResponse{ColumnID: col.ColumnID, Title: col.Title, Tasks: make([]dto.TaskResponse, 0, len(col.TaskIDs))}
		for _, id := range col.TaskIDs {
			t := tasks[id]
			cr.Tasks = append(cr.Tasks, dto.TaskResponse{
				TaskID:      id,
				TaskName:    t.TaskName,
				Description: t.Description,
				Status:      t.Status,
				Priority:    t.Priority,
			})
		}
		resp.Columns = append(resp.Columns, cr)
	}
	return resp
}
