package dto

type CreateEventRequest struct {
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Time     string `json:"time" binding:"omitempty,datetime=15:04"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
}
