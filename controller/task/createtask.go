package task

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"myplanner/controller"
	"myplanner/dto"
	"myplanner/middleware"
	"myplanner/services"
)

func CreateTaskController(router *gin.Engine, boards *services.BoardService) {

	router.POST("/task", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Createtask(c, boards)
	})
}

func Createtask(c *gin.Context, boards *services.BoardService) {
	userId := c.MustGet("userId").(string)
	var taskReq dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	in := services.NewTask{
		BoardID:     taskReq.BoardID,
		ColumnID:    taskReq.ColumnID,
		Name:        taskReq.TaskName,
		Description: taskReq.Description,
		Status:      taskReq.Status,
		Priority:    taskReq.Priority,
	}

	if taskReq.Reminder != nil {
		dueDate, err := time.Parse(time.RFC3339, taskReq.Reminder.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due_date format"})
			return
		}
		reminder := &services.NewReminder{DueDate: dueDate, RecurringPattern: taskReq.Reminder.RecurringPattern}

		if taskReq.Reminder.BeforeDueDate != nil && *taskReq.Reminder.BeforeDueDate != "" {
			before, err := time.Parse(time.RFC3339, *taskReq.Reminder.BeforeDueDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid before_due_date format"})
				return
			}
			reminder.BeforeDueDate = &before
		}
		in.Reminder = reminder
	}

	task, err := boards.CreateTask(c.Request.Context(), userId, in)
	if err != nil {
		controller.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"taskID":  task.TaskID,
	})
}
