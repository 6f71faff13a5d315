package dto

type CreateTaskRequest struct {
	BoardID     string    `json:"boardid" binding:"required"`
	ColumnID    string    `json:"columnid"`
	TaskName    string    `json:"taskname" binding:"required"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Reminder    *Reminder `json:"reminder"`
	Priority    string    `json:"priority" binding:"omitempty,oneof=1 2 3"`
}

type Reminder struct {
	DueDate          string  `json:"duedate" binding:"required"`
	BeforeDueDate    *string `json:"beforeduedate"`
	RecurringPattern string  `json:"pattern,omitempty"`
}

type TaskResponse struct {
	TaskID      string `json:"taskId"`
	TaskName    string `json:"taskName"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
}
