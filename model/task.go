package model

import (
	"time"
)

type TaskType string

const (
	TaskTypeAnnualPlan TaskType = "ANNUAL_PLAN"
	TaskTypeAdHoc      TaskType = "ADHOC"
)

func (t TaskType) Valid() bool {
	return t == TaskTypeAnnualPlan || t == TaskTypeAdHoc
}

type TaskStatus string

const (
	StatusBacklog    TaskStatus = "BACKLOG"
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// TaskStatuses lists the workflow columns in board order.
var TaskStatuses = []TaskStatus{StatusBacklog, StatusTodo, StatusInProgress, StatusDone}

func (s TaskStatus) Valid() bool {
	for _, status := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Tasks struct {
	TaskID        string     `json:"id" firestore:"taskid"`
	Type          TaskType   `json:"type" firestore:"type"`
	Status        TaskStatus `json:"status" firestore:"status"`
	Title         string     `json:"title" firestore:"title"`
	Detail        string     `json:"detail,omitempty" firestore:"detail,omitempty"`
	Remarks       string     `json:"remarks,omitempty" firestore:"remarks,omitempty"`
	TicketNo      string     `json:"ticketNo,omitempty" firestore:"ticketno,omitempty"`
	ProjectID     string     `json:"projectId" firestore:"projectid"`
	UnitID        *string    `json:"unitId,omitempty" firestore:"unitid"`
	ResponsibleID *string    `json:"responsibleId,omitempty" firestore:"responsibleid"`
	CoResponsible string     `json:"coResponsible,omitempty" firestore:"coresponsible,omitempty"`
	Progress      int        `json:"progress" firestore:"progress"`
	DaysSpent     float64    `json:"daysSpent" firestore:"daysspent"`
	EstimatedDays *float64   `json:"estimatedDays,omitempty" firestore:"estimateddays"`
	Year          *int       `json:"year,omitempty" firestore:"year"`
	Order         int        `json:"order" firestore:"order"`
	CreatedBy     string     `json:"-" firestore:"createdby"`
	CreatedAt     time.Time  `json:"createdAt" firestore:"createdat"`
	UpdatedAt     time.Time  `json:"updatedAt" firestore:"updatedat"`

	// Resolved names, filled on reads only.
	ProjectName     string `json:"projectName,omitempty" firestore:"-"`
	UnitName        string `json:"unitName,omitempty" firestore:"-"`
	ResponsibleName string `json:"responsibleName,omitempty" firestore:"-"`
}

type TaskFilter struct {
	Type      TaskType
	Status    TaskStatus
	ProjectID string
	Year      *int
	Query     string
}

// OrderItem is one row of a manual reordering batch.
type OrderItem struct {
	TaskID string `json:"id" binding:"required"`
	Order  int    `json:"order"`
}
