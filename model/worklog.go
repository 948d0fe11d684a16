package model

import "time"

// WorkLog is effort spent on a task on one calendar day. Date is always a UTC midnight.
type WorkLog struct {
	WorkLogID   string    `json:"id" firestore:"worklogid"`
	TaskID      string    `json:"taskId" firestore:"taskid"`
	Date        time.Time `json:"date" firestore:"date"`
	DaysWorked  float64   `json:"daysWorked" firestore:"daysworked"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedBy   string    `json:"-" firestore:"createdby"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdat"`

	TaskTitle   string   `json:"taskTitle,omitempty" firestore:"-"`
	TaskType    TaskType `json:"taskType,omitempty" firestore:"-"`
	ProjectName string   `json:"projectName,omitempty" firestore:"-"`
}

// WorkLogFilter bounds are inclusive calendar days; zero values leave a side open.
type WorkLogFilter struct {
	From   time.Time
	To     time.Time
	TaskID string
}
