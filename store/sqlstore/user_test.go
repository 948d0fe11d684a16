package sqlstore

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

func TestUsers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	n, err := db.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty users table, got %d", n)
	}

	u := &model.User{UserID: uuid.NewString(), Name: "Ada", Email: "  Ada@Example.com ", Password: "hash", Role: model.RoleAdmin}
	if err := db.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	dup := &model.User{UserID: uuid.NewString(), Name: "Ada", Email: "ada@example.com", Password: "hash", Role: model.RoleUser}
	if err := db.CreateUser(ctx, dup); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	got, err := db.GetUserByEmail(ctx, "ADA@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.UserID != u.UserID || got.Role != model.RoleAdmin {
		t.Fatalf("unexpected user: %+v", got)
	}

	if err := db.SetRefreshToken(ctx, u.UserID, "token-hash"); err != nil {
		t.Fatalf("SetRefreshToken failed: %v", err)
	}
	got, err = db.GetUserByID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if got.RefreshToken != "token-hash" {
		t.Fatalf("expected refresh token stored, got %q", got.RefreshToken)
	}

	got.Name = "Ada L."
	if err := db.UpdateUser(ctx, &got); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if _, err := db.GetUserByID(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUser_RemovesOwnedRecords(t *testing.T) {
	ctx := context.Background()
	builder := NewTestDataBuilder(t).WithTask("Task", model.TaskTypeAdHoc)
	db := builder.Build()
	uid := builder.UserID()

	if err := db.CreateWorkLogs(ctx, uid, []model.WorkLog{newLog(builder.TaskID(0), day(2026, 3, 2), 1)}); err != nil {
		t.Fatalf("CreateWorkLogs failed: %v", err)
	}
	if err := db.DeleteUser(ctx, uid); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	n, err := db.CountTasks(ctx, uid)
	if err != nil {
		t.Fatalf("CountTasks failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected tasks removed, got %d", n)
	}
	if _, err := db.GetUserByID(ctx, uid); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
