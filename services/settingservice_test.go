package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

func TestCheckSettingValue(t *testing.T) {
	tests := []struct {
		typ   model.SettingType
		value string
		ok    bool
	}{
		{model.SettingString, "anything", true},
		{model.SettingNumber, "12.5", true},
		{model.SettingNumber, "twelve", false},
		{model.SettingBoolean, "true", true},
		{model.SettingBoolean, "yes", false},
		{model.SettingDate, "2026-02-01", true},
		{model.SettingDate, "01.02.2026", false},
		{model.SettingType("JSON"), "{}", false},
	}
	for _, tt := range tests {
		err := CheckSettingValue(tt.typ, tt.value)
		if (err == nil) != tt.ok {
			t.Errorf("CheckSettingValue(%s, %q) = %v, want ok=%v", tt.typ, tt.value, err, tt.ok)
		}
	}
}

func TestSettingService(t *testing.T) {
	ctx := context.Background()
	db := setupTestStore(t, ctx)
	userID, _ := seedUserAndProject(t, ctx, db)
	svc := NewSettingService(db)

	s, err := svc.Create(ctx, userID, dto.CreateSettingRequest{Key: "fiscal_start", Value: "2026-01-01", Type: "DATE", Label: "Fiscal start"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, userID, dto.CreateSettingRequest{Key: "fiscal_start", Value: "x", Type: "STRING", Label: "Dup"}); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	bad := "not-a-date"
	var verr *ValidationError
	if _, err := svc.Update(ctx, userID, s.SettingID, dto.UpdateSettingRequest{Value: &bad}); !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	good := "2026-04-01"
	updated, err := svc.Update(ctx, userID, s.SettingID, dto.UpdateSettingRequest{Value: &good})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Value != good {
		t.Fatalf("expected value %s, got %s", good, updated.Value)
	}
	byKey, err := svc.GetByKey(ctx, userID, "fiscal_start")
	if err != nil || byKey.Value != good {
		t.Fatalf("GetByKey = %+v, %v", byKey, err)
	}
	if err := svc.Delete(ctx, userID, s.SettingID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}
