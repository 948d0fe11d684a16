package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

type SettingService struct {
	settings store.SettingStore
}

func NewSettingService(settings store.SettingStore) *SettingService {
	return &SettingService{settings: settings}
}

// CheckSettingValue reports whether value parses as the setting type.
func CheckSettingValue(t model.SettingType, value string) error {
	switch t {
	case model.SettingString:
		return nil
	case model.SettingNumber:
		if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
			return invalid("value", "must be a number")
		}
	case model.SettingBoolean:
		if value != "true" && value != "false" {
			return invalid("value", "must be true or false")
		}
	case model.SettingDate:
		if _, err := ParseDate(value); err != nil {
			return invalid("value", "must be a date formatted %s", DateLayout)
		}
	default:
		return invalid("type", "must be one of STRING, NUMBER, BOOLEAN, DATE")
	}
	return nil
}

func (s *SettingService) List(ctx context.Context, userID string) ([]model.Setting, error) {
	return s.settings.ListSettings(ctx, userID)
}

func (s *SettingService) GetByKey(ctx context.Context, userID, key string) (model.Setting, error) {
	return s.settings.GetSettingByKey(ctx, userID, key)
}

func (s *SettingService) Create(ctx context.Context, userID string, req dto.CreateSettingRequest) (model.Setting, error) {
	if err := validateStruct(req); err != nil {
		return model.Setting{}, err
	}
	setting := model.Setting{
		SettingID:   uuid.NewString(),
		Key:         strings.TrimSpace(req.Key),
		Value:       req.Value,
		Type:        model.SettingType(req.Type),
		Label:       req.Label,
		Description: req.Description,
	}
	if err := CheckSettingValue(setting.Type, setting.Value); err != nil {
		return model.Setting{}, err
	}
	if err := s.settings.CreateSetting(ctx, userID, &setting); err != nil {
		return model.Setting{}, err
	}
	return setting, nil
}

func (s *SettingService) Update(ctx context.Context, userID, settingID string, req dto.UpdateSettingRequest) (model.Setting, error) {
	if err := validateStruct(req); err != nil {
		return model.Setting{}, err
	}
	setting, err := s.settings.GetSetting(ctx, userID, settingID)
	if err != nil {
		return model.Setting{}, err
	}
	if req.Value != nil {
		if err := CheckSettingValue(setting.Type, *req.Value); err != nil {
			return model.Setting{}, err
		}
		setting.Value = *req.Value
	}
	if req.Label != nil {
		setting.Label = *req.Label
	}
	if req.Description != nil {
		setting.Description = *req.Description
	}
	if err := s.settings.UpdateSetting(ctx, userID, &setting); err != nil {
		return model.Setting{}, err
	}
	return setting, nil
}

func (s *SettingService) Delete(ctx context.Context, userID, settingID string) error {
	return s.settings.DeleteSetting(ctx, userID, settingID)
}
