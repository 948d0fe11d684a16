package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mustafagenc/planly/model"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, DriverSQLite, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestDataBuilder seeds a user with projects and tasks.
type TestDataBuilder struct {
	t          *testing.T
	ctx        context.Context
	db         *Database
	userID     string
	projectIDs []string
	taskIDs    []string
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	b := &TestDataBuilder{t: t, ctx: ctx, db: setupTestDB(t, ctx)}
	b.userID = b.addUser("owner@example.com")
	return b
}

func (b *TestDataBuilder) addUser(email string) string {
	b.t.Helper()
	u := &model.User{UserID: uuid.NewString(), Name: "Owner", Email: email, Password: "hash", Role: model.RoleUser}
	if err := b.db.CreateUser(b.ctx, u); err != nil {
		b.t.Fatalf("CreateUser failed: %v", err)
	}
	return u.UserID
}

func (b *TestDataBuilder) WithProject(name string) *TestDataBuilder {
	b.t.Helper()
	def := &model.Definition{DefinitionID: uuid.NewString(), Kind: model.KindProject, Name: name}
	if err := b.db.CreateDefinition(b.ctx, b.userID, def); err != nil {
		b.t.Fatalf("CreateDefinition failed: %v", err)
	}
	b.projectIDs = append(b.projectIDs, def.DefinitionID)
	return b
}

func (b *TestDataBuilder) WithTask(title string, taskType model.TaskType) *TestDataBuilder {
	b.t.Helper()
	if len(b.projectIDs) == 0 {
		b.WithProject("Default")
	}
	now := time.Now().UTC()
	task := &model.Tasks{
		TaskID:    uuid.NewString(),
		Type:      taskType,
		Status:    model.StatusBacklog,
		Title:     title,
		ProjectID: b.projectIDs[len(b.projectIDs)-1],
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := b.db.CreateTask(b.ctx, b.userID, task); err != nil {
		b.t.Fatalf("CreateTask failed: %v", err)
	}
	b.taskIDs = append(b.taskIDs, task.TaskID)
	return b
}

func (b *TestDataBuilder) Build() *Database { return b.db }

func (b *TestDataBuilder) UserID() string { return b.userID }

func (b *TestDataBuilder) ProjectID(i int) string { return b.projectIDs[i] }

func (b *TestDataBuilder) TaskID(i int) string { return b.taskIDs[i] }

func newLog(taskID string, date time.Time, days float64) model.WorkLog {
	return model.WorkLog{
		WorkLogID:  uuid.NewString(),
		TaskID:     taskID,
		Date:       date,
		DaysWorked: days,
		CreatedAt:  time.Now().UTC(),
	}
}
