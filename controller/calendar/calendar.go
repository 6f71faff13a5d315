package calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	calgrid "myplanner/calendar"
	"myplanner/controller"
	"myplanner/dto"
	"myplanner/middleware"
	"myplanner/services"
)

func CalendarController(router *gin.Engine, cal *services.CalendarService) {
	routes := router.Group("/calendar", middleware.AccessTokenMiddleware())
	{
		routes.GET("/:year/:month", func(c *gin.Context) {
			GetMonth(c, cal)
		})
		routes.POST("/event", func(c *gin.Context) {
			CreateEvent(c, cal)
		})
	}
}

// GetMonth returns the 42-cell grid for /calendar/:year/:month. The optional
// ?today=YYYY-MM-DD query replaces the server's current day.
func GetMonth(c *gin.Context, cal *services.CalendarService) {
	userId := c.MustGet("userId").(string)

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	today := cal.Today()
	if v := c.Query("today"); v != "" {
		if today, err = calgrid.ParseDay(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid today format"})
			return
		}
	}

	grid, err := cal.Month(c.Request.Context(), userId, year, time.Month(month), today)
	if err != nil {
		controller.AbortWithError(c, err)
		return
	}

	prevYear, prevMonth := calgrid.ShiftMonth(year, time.Month(month), -1)
	nextYear, nextMonth := calgrid.ShiftMonth(year, time.Month(month), 1)
	c.JSON(http.StatusOK, gin.H{
		"year":    grid.Year,
		"month":   int(grid.Month),
		"cells":   grid.Cells,
		"skipped": len(grid.Skipped),
		"prev":    gin.H{"year": prevYear, "month": int(prevMonth)},
		"next":    gin.H{"year": nextYear, "month": int(nextMonth)},
	})
}

func CreateEvent(c *gin.Context, cal *services.CalendarService) {
	userId := c.MustGet("userId").(string)
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ev, err := cal.CreateEvent(c.Request.Context(), userId, services.NewEvent{
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Priority: req.Priority,
		Type:     req.Type,
	})
	if err != nil {
		controller.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"eventId": ev.EventID,
	})
}
