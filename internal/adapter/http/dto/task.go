package dto

type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartTime   string  `json:"start_time"`
	EndTime     *string `json:"end_time,omitempty"`
	Status      string  `json:"status"`
	CreatedBy   string  `json:"created_by"`
	Mine        bool    `json:"mine"`
}

// TaskPayload is the add/edit dialog. Date is YYYY-MM-DD, clocks are HH:mm.
type TaskPayload struct {
	Title       string  `json:"title" form:"title" binding:"max=255"`
	Description string  `json:"description" form:"description" binding:"max=65535"`
	Date        string  `json:"date" form:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime   string  `json:"start_time" form:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime     string  `json:"end_time" form:"end_time" binding:"omitempty,datetime=15:04"`
	Status      *string `json:"status" form:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

type FilterRequest struct {
	Filter string `json:"filter" form:"filter" binding:"required"`
}

// TaskFormResponse pre-fills the edit dialog of one task.
type TaskFormResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	Mine        bool   `json:"mine"`
}
