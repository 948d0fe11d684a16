// Package store defines the persistence contracts shared by the SQL and
// Firestore backends. Every method that touches user data takes the owning
// user's id and never reads or writes rows owned by someone else.
package store

import (
	"context"

	"github.com/mustafagenc/planly/model"
)

type TaskStore interface {
	CreateTask(ctx context.Context, userID string, task *model.Tasks) error
	GetTask(ctx context.Context, userID, taskID string) (model.Tasks, error)
	ListTasks(ctx context.Context, userID string, filter model.TaskFilter) ([]model.Tasks, error)
	// UpdateTask writes every editable column except DaysSpent.
	UpdateTask(ctx context.Context, userID string, task *model.Tasks) error
	DeleteTask(ctx context.Context, userID, taskID string) error
	// ReorderTasks applies all items or none.
	ReorderTasks(ctx context.Context, userID string, items []model.OrderItem) error
	CountTasks(ctx context.Context, userID string) (int, error)
}

type WorkLogStore interface {
	// CreateWorkLogs inserts every log and adds their DaysWorked to the owning
	// tasks in one transaction.
	CreateWorkLogs(ctx context.Context, userID string, logs []model.WorkLog) error
	GetWorkLog(ctx context.Context, userID, workLogID string) (model.WorkLog, error)
	ListWorkLogs(ctx context.Context, userID string, filter model.WorkLogFilter) ([]model.WorkLog, error)
	// UpdateWorkLog moves the task's DaysSpent by the change in DaysWorked, clamped at zero.
	UpdateWorkLog(ctx context.Context, userID string, log *model.WorkLog) error
	// DeleteWorkLog returns the removed row; the task's DaysSpent drops by its
	// DaysWorked, clamped at zero.
	DeleteWorkLog(ctx context.Context, userID, workLogID string) (model.WorkLog, error)
}

type DefinitionStore interface {
	CreateDefinition(ctx context.Context, userID string, def *model.Definition) error
	GetDefinition(ctx context.Context, userID string, kind model.DefinitionKind, id string) (model.Definition, error)
	ListDefinitions(ctx context.Context, userID string, kind model.DefinitionKind) ([]model.Definition, error)
	RenameDefinition(ctx context.Context, userID string, kind model.DefinitionKind, id, name string) error
	DeleteDefinition(ctx context.Context, userID string, kind model.DefinitionKind, id string) error
}

type SettingStore interface {
	CreateSetting(ctx context.Context, userID string, setting *model.Setting) error
	GetSetting(ctx context.Context, userID, settingID string) (model.Setting, error)
	GetSettingByKey(ctx context.Context, userID, key string) (model.Setting, error)
	ListSettings(ctx context.Context, userID string) ([]model.Setting, error)
	UpdateSetting(ctx context.Context, userID string, setting *model.Setting) error
	DeleteSetting(ctx context.Context, userID, settingID string) error
}

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, userID string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	SetRefreshToken(ctx context.Context, userID, hash string) error
	DeleteUser(ctx context.Context, userID string) error
	CountUsers(ctx context.Context) (int, error)
}

// Store is the full persistence surface used by the services.
type Store interface {
	TaskStore
	WorkLogStore
	DefinitionStore
	SettingStore
	UserStore
	Close() error
}
