package sqlstore

import (
	"context"
	"errors"
	"testing"

	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

func TestCreateWorkLogs_IncrementsTasks(t *testing.T) {
	ctx := context.Background()
	builder := NewTestDataBuilder(t).
		WithTask("Plan", model.TaskTypeAnnualPlan).
		WithTask("Fix", model.TaskTypeAdHoc)
	db := builder.Build()
	uid := builder.UserID()

	logs := []model.WorkLog{
		newLog(builder.TaskID(0), day(2026, 2, 2), 1),
		newLog(builder.TaskID(0), day(2026, 2, 3), 0.5),
		newLog(builder.TaskID(1), day(2026, 2, 3), 0.5),
	}
	if err := db.CreateWorkLogs(ctx, uid, logs); err != nil {
		t.Fatalf("CreateWorkLogs failed: %v", err)
	}
	plan, _ := db.GetTask(ctx, uid, builder.TaskID(0))
	fix, _ := db.GetTask(ctx, uid, builder.TaskID(1))
	if plan.DaysSpent != 1.5 || fix.DaysSpent != 0.5 {
		t.Fatalf("unexpected days spent: plan=%v fix=%v", plan.DaysSpent, fix.DaysSpent)
	}

	got, err := db.ListWorkLogs(ctx, uid, model.WorkLogFilter{})
	if err != nil {
		t.Fatalf("ListWorkLogs failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(got))
	}
	if !got[0].Date.Equal(day(2026, 2, 3)) {
		t.Fatalf("expected newest day first, got %s", got[0].Date)
	}
	if got[0].ProjectName == "" || got[0].TaskTitle == "" {
		t.Fatalf("expected joined task and project names: %+v", got[0])
	}
}

func TestCreateWorkLogs_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	builder := NewTestDataBuilder(t).WithTask("Plan", model.TaskTypeAnnualPlan)
	db := builder.Build()
	uid := builder.UserID()

	logs := []model.WorkLog{
		newLog(builder.TaskID(0), day(2026, 2, 2), 1),
		newLog("missing-task", day(2026, 2, 3), 1),
	}
	if err := db.CreateWorkLogs(ctx, uid, logs); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	task, _ := db.GetTask(ctx, uid, builder.TaskID(0))
	if task.DaysSpent != 0 {
		t.Fatalf("expected no increment after failed batch, got %v", task.DaysSpent)
	}
	got, err := db.ListWorkLogs(ctx, uid, model.WorkLogFilter{})
	if err != nil {
		t.Fatalf("ListWorkLogs failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no logs after failed batch, got %d", len(got))
	}
}

func TestListWorkLogs_DateRange(t *testing.T) {
	ctx := context.Background()
	builder := NewTestDataBuilder(t).WithTask("Plan", model.TaskTypeAnnualPlan)
	db := builder.Build()
	uid := builder.UserID()

	logs := []model.WorkLog{
		newLog(builder.TaskID(0), day(2026, 1, 31), 1),
		newLog(builder.TaskID(0), day(2026, 2, 1), 1),
		newLog(builder.TaskID(0), day(2026, 2, 28), 1),
		newLog(builder.TaskID(0), day(2026, 3, 1), 1),
	}
	if err := db.CreateWorkLogs(ctx, uid, logs); err != nil {
		t.Fatalf("CreateWorkLogs failed: %v", err)
	}
	feb, err := db.ListWorkLogs(ctx, uid, model.WorkLogFilter{From: day(2026, 2, 1), To: day(2026, 2, 28)})
	if err != nil {
		t.Fatalf("ListWorkLogs failed: %v", err)
	}
	if len(feb) != 2 {
		t.Fatalf("expected 2 logs in February, got %d", len(feb))
	}
}

func TestDeleteWorkLog_ClampsAtZero(t *testing.T) {
	ctx := context.Background()
	builder := NewTestDataBuilder(t).WithTask("Plan", model.TaskTypeAnnualPlan)
	db := builder.Build()
	uid := builder.UserID()

	log := newLog(builder.TaskID(0), day(2026, 2, 2), 1)
	if err := db.CreateWorkLogs(ctx, uid, []model.WorkLog{log}); err != nil {
		t.Fatalf("CreateWorkLogs failed: %v", err)
	}
	if _, err := db.DB.ExecContext(ctx, "UPDATE tasks SET days_spent = 0.25 WHERE id = ?", builder.TaskID(0)); err != nil {
		t.Fatalf("seed days spent failed: %v", err)
	}
	removed, err := db.DeleteWorkLog(ctx, uid, log.WorkLogID)
	if err != nil {
		t.Fatalf("DeleteWorkLog failed: %v", err)
	}
	if removed.DaysWorked != 1 {
		t.Fatalf("expected removed log to carry 1 day, got %v", removed.DaysWorked)
	}
	task, _ := db.GetTask(ctx, uid, builder.TaskID(0))
	if task.DaysSpent != 0 {
		t.Fatalf("expected days spent clamped to 0, got %v", task.DaysSpent)
	}
	if _, err := db.DeleteWorkLog(ctx, uid, log.WorkLogID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateWorkLog_AppliesDelta(t *testing.T) {
	ctx := context.Background()
	builder := NewTestDataBuilder(t).WithTask("Plan", model.TaskTypeAnnualPlan)
	db := builder.Build()
	uid := builder.UserID()

	logs := []model.WorkLog{
		newLog(builder.TaskID(0), day(2026, 2, 2), 1),
		newLog(builder.TaskID(0), day(2026, 2, 3), 1),
	}
	if err := db.CreateWorkLogs(ctx, uid, logs); err != nil {
		t.Fatalf("CreateWorkLogs failed: %v", err)
	}
	edit := logs[1]
	edit.DaysWorked = 0.5
	edit.Description = "half day"
	if err := db.UpdateWorkLog(ctx, uid, &edit); err != nil {
		t.Fatalf("UpdateWorkLog failed: %v", err)
	}
	task, _ := db.GetTask(ctx, uid, builder.TaskID(0))
	if task.DaysSpent != 1.5 {
		t.Fatalf("expected days spent 1.5, got %v", task.DaysSpent)
	}
	got, err := db.GetWorkLog(ctx, uid, edit.WorkLogID)
	if err != nil {
		t.Fatalf("GetWorkLog failed: %v", err)
	}
	if got.Description != "half day" || got.DaysWorked != 0.5 {
		t.Fatalf("update not applied: %+v", got)
	}
}
