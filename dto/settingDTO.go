package dto

type CreateSettingRequest struct {
	Key         string `json:"key" binding:"required,max=100"`
	Value       string `json:"value"`
	Type        string `json:"type" binding:"required,oneof=STRING NUMBER BOOLEAN DATE"`
	Label       string `json:"label" binding:"required,max=200"`
	Description string `json:"description"`
}

type UpdateSettingRequest struct {
	Value       *string `json:"value"`
	Label       *string `json:"label" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}
