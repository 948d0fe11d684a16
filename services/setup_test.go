package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store/sqlstore"
	"golang.org/x/crypto/bcrypt"
)

func setupTestStore(t *testing.T, ctx context.Context) *sqlstore.Database {
	t.Helper()
	db, err := sqlstore.Open(ctx, sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
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

func newTestAuth(db *sqlstore.Database, allowRegistration bool) *AuthService {
	tokens := NewTokenIssuer("access-secret", "refresh-secret", defaultTestTTL, 10*defaultTestTTL)
	return NewAuthService(db, tokens, AuthOptions{AllowRegistration: allowRegistration, BcryptCost: bcrypt.MinCost})
}

// seedUserAndProject registers a user and one project, returning both ids.
func seedUserAndProject(t *testing.T, ctx context.Context, db *sqlstore.Database) (string, string) {
	t.Helper()
	user, err := newTestAuth(db, true).CreateUser(ctx, "Owner", "owner@example.com", "password123", model.RoleUser)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	project, err := NewDefinitionService(db).Create(ctx, user.UserID, "projects", dto.DefinitionRequest{Name: "Core"})
	if err != nil {
		t.Fatalf("Create project failed: %v", err)
	}
	return user.UserID, project.DefinitionID
}

func seedTask(t *testing.T, ctx context.Context, db *sqlstore.Database, userID, projectID, taskType string) model.Tasks {
	t.Helper()
	task, err := NewTaskService(db, db).CreateTask(ctx, userID, dto.CreateTaskRequest{
		Type:      taskType,
		Title:     "Task " + taskType,
		ProjectID: projectID,
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	return task
}
