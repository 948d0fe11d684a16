package dto

type DefinitionRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}
