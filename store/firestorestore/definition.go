package firestorestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

func definitionCollection(kind model.DefinitionKind) (string, error) {
	collection, ok := definitionCollections[kind]
	if !ok {
		return "", fmt.Errorf("unknown definition kind %q", kind)
	}
	return collection, nil
}

func (c *Client) CreateDefinition(ctx context.Context, userID string, def *model.Definition) error {
	collection, err := definitionCollection(def.Kind)
	if err != nil {
		return err
	}
	def.CreatedBy = userID
	if def.CreatedAt.IsZero() {
		def.CreatedAt = time.Now().UTC()
	}
	err = c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		taken, err := exists(ctx, tx, c.owned(collection, userID).Where("name", "==", def.Name))
		if err != nil {
			return err
		}
		if taken {
			return store.ErrDuplicate
		}
		return tx.Create(c.fs.Collection(collection).Doc(def.DefinitionID), def)
	})
	return wrap("create", string(def.Kind), def.DefinitionID, err)
}

func (c *Client) GetDefinition(ctx context.Context, userID string, kind model.DefinitionKind, id string) (model.Definition, error) {
	def := model.Definition{Kind: kind}
	collection, err := definitionCollection(kind)
	if err != nil {
		return def, err
	}
	err = getOwned(ctx, nil, c.fs.Collection(collection).Doc(id), userID, &def)
	def.Kind = kind
	return def, wrap("get", string(kind), id, err)
}

func (c *Client) ListDefinitions(ctx context.Context, userID string, kind model.DefinitionKind) ([]model.Definition, error) {
	collection, err := definitionCollection(kind)
	if err != nil {
		return nil, err
	}
	defs, err := collect[model.Definition](c.owned(collection, userID).Documents(ctx))
	if err != nil {
		return nil, wrap("list", string(kind), "", err)
	}
	for i := range defs {
		defs[i].Kind = kind
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

func (c *Client) RenameDefinition(ctx context.Context, userID string, kind model.DefinitionKind, id, name string) error {
	collection, err := definitionCollection(kind)
	if err != nil {
		return err
	}
	ref := c.fs.Collection(collection).Doc(id)
	err = c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current model.Definition
		if err := getOwned(ctx, tx, ref, userID, &current); err != nil {
			return err
		}
		if current.Name == name {
			return nil
		}
		taken, err := exists(ctx, tx, c.owned(collection, userID).Where("name", "==", name))
		if err != nil {
			return err
		}
		if taken {
			return store.ErrDuplicate
		}
		return tx.Update(ref, []firestore.Update{{Path: "name", Value: name}})
	})
	return wrap("rename", string(kind), id, err)
}

func (c *Client) DeleteDefinition(ctx context.Context, userID string, kind model.DefinitionKind, id string) error {
	collection, err := definitionCollection(kind)
	if err != nil {
		return err
	}
	ref := c.fs.Collection(collection).Doc(id)
	err = c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current model.Definition
		if err := getOwned(ctx, tx, ref, userID, &current); err != nil {
			return err
		}
		referenced, err := exists(ctx, tx, c.owned(tasksCollection, userID).Where(taskRefFields[kind], "==", id))
		if err != nil {
			return err
		}
		if referenced {
			return store.ErrHasDependents
		}
		return tx.Delete(ref)
	})
	return wrap("delete", string(kind), id, err)
}
