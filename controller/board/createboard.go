package board

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myplanner/controller"
	"myplanner/dto"
	"myplanner/middleware"
	"myplanner/services"
)

func BoardController(router *gin.Engine, boards *services.BoardService) {
	routes := router.Group("/board", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateBoard(c, boards)
		})
		routes.GET("/:boardid", func(c *gin.Context) {
			GetBoard(c, boards)
		})
		routes.PATCH("/:boardid/move", func(c *gin.Context) {
			MoveTask(c, boards)
		})
	}
}

func CreateBoard(c *gin.Context, boards *services.BoardService) {
	userId := c.MustGet("userId").(string)
	var board dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&board); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	newBoard, err := boards.CreateBoard(c.Request.Context(), userId, services.NewBoard{
		Name:    board.BoardName,
		Group:   board.Is_group == "1",
		Columns: board.Columns,
	})
	if err != nil {
		controller.AbortWithError(c, err)
		return
	}

	response := gin.H{
		"boardId": newBoard.BoardID,
		"message": "Board created successfully",
	}
	if newBoard.DeepLink != "" {
		response["deep_link"] = newBoard.DeepLink
	}

	c.JSON(http.StatusCreated, response)
}
