package model

import "time"

// DefinitionKind names one of the reference lists tasks point at.
type DefinitionKind string

const (
	KindProject DefinitionKind = "projects"
	KindUnit    DefinitionKind = "units"
	KindPerson  DefinitionKind = "people"
)

func (k DefinitionKind) Valid() bool {
	switch k {
	case KindProject, KindUnit, KindPerson:
		return true
	}
	return false
}

// Definition is a Project, Unit or Person.
type Definition struct {
	DefinitionID string         `json:"id" firestore:"definitionid"`
	Kind         DefinitionKind `json:"kind" firestore:"-"`
	Name         string         `json:"name" firestore:"name"`
	CreatedBy    string         `json:"-" firestore:"createdby"`
	CreatedAt    time.Time      `json:"createdAt" firestore:"createdat"`
}
