package dto

type CreateTaskRequest struct {
	Type          string   `json:"type" binding:"required,oneof=ANNUAL_PLAN ADHOC"`
	Title         string   `json:"title" binding:"required,max=300"`
	Detail        string   `json:"detail"`
	Remarks       string   `json:"remarks"`
	TicketNo      string   `json:"ticketNo" binding:"max=100"`
	ProjectID     string   `json:"projectId" binding:"required"`
	UnitID        *string  `json:"unitId"`
	ResponsibleID *string  `json:"responsibleId"`
	CoResponsible string   `json:"coResponsible"`
	EstimatedDays *float64 `json:"estimatedDays" binding:"omitempty,gte=0"`
	Year          *int     `json:"year" binding:"omitempty,gte=1900,lte=9999"`
}

// UpdateTaskRequest is a partial update; nil fields are left alone. An empty
// unitId or responsibleId clears the reference.
type UpdateTaskRequest struct {
	Type          *string  `json:"type" binding:"omitempty,oneof=ANNUAL_PLAN ADHOC"`
	Status        *string  `json:"status" binding:"omitempty,oneof=BACKLOG TODO IN_PROGRESS DONE"`
	Title         *string  `json:"title" binding:"omitempty,min=1,max=300"`
	Detail        *string  `json:"detail"`
	Remarks       *string  `json:"remarks"`
	TicketNo      *string  `json:"ticketNo" binding:"omitempty,max=100"`
	ProjectID     *string  `json:"projectId" binding:"omitempty,min=1"`
	UnitID        *string  `json:"unitId"`
	ResponsibleID *string  `json:"responsibleId"`
	CoResponsible *string  `json:"coResponsible"`
	Progress      *int     `json:"progress" binding:"omitempty,gte=0,lte=100"`
	EstimatedDays *float64 `json:"estimatedDays" binding:"omitempty,gte=0"`
	Year          *int     `json:"year" binding:"omitempty,gte=1900,lte=9999"`
	Order         *int     `json:"order"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=BACKLOG TODO IN_PROGRESS DONE"`
}

type ReorderItem struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

type ReorderTasksRequest struct {
	Items []ReorderItem `json:"items" binding:"required,dive"`
}

type TaskQuery struct {
	Type      string `form:"type" binding:"omitempty,oneof=ANNUAL_PLAN ADHOC"`
	Status    string `form:"status" binding:"omitempty,oneof=BACKLOG TODO IN_PROGRESS DONE"`
	ProjectID string `form:"projectId"`
	Year      *int   `form:"year" binding:"omitempty,gte=1900,lte=9999"`
	Query     string `form:"q"`
}
