package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"myplanner/calendar"
	"myplanner/kanban"
	"myplanner/services"
)

// AbortWithError maps service and domain errors to a status code and the
// {"error": ...} body used by every route.
func AbortWithError(c *gin.Context, err error) {
	var (
		moveErr  *kanban.InvalidMoveError
		boardErr *kanban.InvalidBoardError
		rangeErr *calendar.InvalidDateRangeError
	)
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrBoardNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrColumnNotFound):
		status = http.StatusBadRequest
	case errors.As(err, &moveErr):
		// The drag was computed against a board that has since changed.
		status = http.StatusConflict
	case errors.As(err, &boardErr):
		status = http.StatusConflict
	case errors.As(err, &rangeErr):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
