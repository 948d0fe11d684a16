package dto

// Dates are calendar days formatted YYYY-MM-DD.

type CreateWorkLogRequest struct {
	TaskID      string  `json:"taskId" binding:"required"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	DaysWorked  float64 `json:"daysWorked" binding:"required,gt=0"`
	Description string  `json:"description"`
}

type CreateWorkLogBatchRequest struct {
	TaskID      string `json:"taskId" binding:"required"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
}

type UpdateWorkLogRequest struct {
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DaysWorked  *float64 `json:"daysWorked" binding:"omitempty,gt=0"`
	Description *string  `json:"description"`
}

type WorkLogQuery struct {
	Year   int    `form:"year" binding:"omitempty,gte=1900,lte=9999"`
	Month  int    `form:"month" binding:"omitempty,gte=1,lte=12"`
	TaskID string `form:"taskId"`
}
