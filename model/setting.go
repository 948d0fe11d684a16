package model

import "time"

type SettingType string

const (
	SettingString  SettingType = "STRING"
	SettingNumber  SettingType = "NUMBER"
	SettingBoolean SettingType = "BOOLEAN"
	SettingDate    SettingType = "DATE"
)

func (t SettingType) Valid() bool {
	switch t {
	case SettingString, SettingNumber, SettingBoolean, SettingDate:
		return true
	}
	return false
}

type Setting struct {
	SettingID   string      `json:"id" firestore:"settingid"`
	Key         string      `json:"key" firestore:"key"`
	Value       string      `json:"value" firestore:"value"`
	Type        SettingType `json:"type" firestore:"type"`
	Label       string      `json:"label" firestore:"label"`
	Description string      `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedBy   string      `json:"-" firestore:"createdby"`
	CreatedAt   time.Time   `json:"createdAt" firestore:"createdat"`
	UpdatedAt   time.Time   `json:"updatedAt" firestore:"updatedat"`
}
