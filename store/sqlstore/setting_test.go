package sqlstore

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

func TestSettings_CRUD(t *testing.T) {
	ctx := context.Background()
	builder := NewTestDataBuilder(t)
	db := builder.Build()
	uid := builder.UserID()

	s := &model.Setting{
		SettingID: uuid.NewString(),
		Key:       "working_days_per_year",
		Value:     "220",
		Type:      model.SettingNumber,
		Label:     "Working days",
	}
	if err := db.CreateSetting(ctx, uid, s); err != nil {
		t.Fatalf("CreateSetting failed: %v", err)
	}
	dup := *s
	dup.SettingID = uuid.NewString()
	if err := db.CreateSetting(ctx, uid, &dup); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	byKey, err := db.GetSettingByKey(ctx, uid, "working_days_per_year")
	if err != nil {
		t.Fatalf("GetSettingByKey failed: %v", err)
	}
	if byKey.SettingID != s.SettingID || byKey.Type != model.SettingNumber {
		t.Fatalf("unexpected setting: %+v", byKey)
	}

	s.Value = "210"
	s.Description = "after holidays"
	if err := db.UpdateSetting(ctx, uid, s); err != nil {
		t.Fatalf("UpdateSetting failed: %v", err)
	}
	got, err := db.GetSetting(ctx, uid, s.SettingID)
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if got.Value != "210" || got.Description != "after holidays" {
		t.Fatalf("update not applied: %+v", got)
	}

	list, err := db.ListSettings(ctx, uid)
	if err != nil {
		t.Fatalf("ListSettings failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 setting, got %d", len(list))
	}

	if err := db.DeleteSetting(ctx, uid, s.SettingID); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}
	if err := db.DeleteSetting(ctx, uid, s.SettingID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
