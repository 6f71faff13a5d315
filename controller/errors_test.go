package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"myplanner/calendar"
	"myplanner/kanban"
	"myplanner/services"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
		body   string
	}{
		{services.ErrBoardNotFound, http.StatusNotFound, `{"error":"board not found"}`},
		{fmt.Errorf("load: %w", services.ErrForbidden), http.StatusForbidden, ""},
		{fmt.Errorf("%w: later", services.ErrColumnNotFound), http.StatusBadRequest, ""},
		{&kanban.InvalidMoveError{Reason: "source index out of range"}, http.StatusConflict, ""},
		{&kanban.InvalidBoardError{Reason: "duplicate task"}, http.StatusConflict, ""},
		{&calendar.InvalidDateRangeError{Year: 2023, Month: 13}, http.StatusBadRequest, ""},
		{errors.New("firestore unavailable"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			AbortWithError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.True(t, c.IsAborted())
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rec.Body.String())
			}
			if tt.status == http.StatusInternalServerError {
				assert.Len(t, c.Errors, 1)
			}
		})
	}
}
