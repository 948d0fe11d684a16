package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/store"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_ProfileAndDelete(t *testing.T) {
	ctx := context.Background()
	db := setupTestStore(t, ctx)
	userID, projectID := seedUserAndProject(t, ctx, db)
	users := NewUserService(db, db, bcrypt.MinCost)

	name, password := "Renamed", "new-password"
	profile, err := users.UpdateProfile(ctx, userID, dto.UpdateProfileRequest{Name: &name, Password: &password})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if profile.Name != "Renamed" || profile.Email != "owner@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if _, err := newTestAuth(db, true).Login(ctx, dto.SigninRequest{Email: "owner@example.com", Password: password}); err != nil {
		t.Fatalf("Login with new password failed: %v", err)
	}

	task := seedTask(t, ctx, db, userID, projectID, "ADHOC")
	if err := users.DeleteAccount(ctx, userID); !errors.Is(err, store.ErrHasDependents) {
		t.Fatalf("expected ErrHasDependents, got %v", err)
	}
	if err := NewTaskService(db, db).DeleteTask(ctx, userID, task.TaskID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if err := users.DeleteAccount(ctx, userID); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}
	if _, err := users.Profile(ctx, userID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
