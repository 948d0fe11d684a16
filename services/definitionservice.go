package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

// DefinitionService manages projects, units and people.
type DefinitionService struct {
	defs store.DefinitionStore
}

func NewDefinitionService(defs store.DefinitionStore) *DefinitionService {
	return &DefinitionService{defs: defs}
}

func parseKind(kind string) (model.DefinitionKind, error) {
	k := model.DefinitionKind(strings.ToLower(kind))
	if !k.Valid() {
		return "", invalid("kind", "must be one of projects, units, people")
	}
	return k, nil
}

func cleanName(req dto.DefinitionRequest) (string, error) {
	if err := validateStruct(req); err != nil {
		return "", err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", invalid("name", "is required")
	}
	return name, nil
}

func (s *DefinitionService) List(ctx context.Context, userID, kind string) ([]model.Definition, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}
	return s.defs.ListDefinitions(ctx, userID, k)
}

func (s *DefinitionService) Create(ctx context.Context, userID, kind string, req dto.DefinitionRequest) (model.Definition, error) {
	k, err := parseKind(kind)
	if err != nil {
		return model.Definition{}, err
	}
	name, err := cleanName(req)
	if err != nil {
		return model.Definition{}, err
	}
	def := model.Definition{
		DefinitionID: uuid.NewString(),
		Kind:         k,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.defs.CreateDefinition(ctx, userID, &def); err != nil {
		return model.Definition{}, err
	}
	return def, nil
}

func (s *DefinitionService) Rename(ctx context.Context, userID, kind, id string, req dto.DefinitionRequest) (model.Definition, error) {
	k, err := parseKind(kind)
	if err != nil {
		return model.Definition{}, err
	}
	name, err := cleanName(req)
	if err != nil {
		return model.Definition{}, err
	}
	if err := s.defs.RenameDefinition(ctx, userID, k, id, name); err != nil {
		return model.Definition{}, err
	}
	return s.defs.GetDefinition(ctx, userID, k, id)
}

// Delete fails with store.ErrHasDependents while any task references the entry.
func (s *DefinitionService) Delete(ctx context.Context, userID, kind, id string) error {
	k, err := parseKind(kind)
	if err != nil {
		return err
	}
	return s.defs.DeleteDefinition(ctx, userID, k, id)
}
