package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

// definitionTables maps a kind onto its table and the task column that references it.
var definitionTables = map[model.DefinitionKind]struct {
	table    string
	taskRef  string
	singular string
}{
	model.KindProject: {table: "projects", taskRef: "project_id", singular: "project"},
	model.KindUnit:    {table: "units", taskRef: "unit_id", singular: "unit"},
	model.KindPerson:  {table: "people", taskRef: "responsible_id", singular: "person"},
}

func definitionTable(kind model.DefinitionKind) (table, taskRef, resource string, err error) {
	t, ok := definitionTables[kind]
	if !ok {
		return "", "", "", fmt.Errorf("unknown definition kind %q", kind)
	}
	return t.table, t.taskRef, t.singular, nil
}

func (d *Database) CreateDefinition(ctx context.Context, userID string, def *model.Definition) error {
	table, _, resource, err := definitionTable(def.Kind)
	if err != nil {
		return err
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	def.CreatedBy = userID
	if def.CreatedAt.IsZero() {
		def.CreatedAt = time.Now().UTC()
	}
	_, err = d.DB.ExecContext(ctx, d.rebind("INSERT INTO "+table+" (id, user_id, name, created_at) VALUES (?, ?, ?, ?)"),
		def.DefinitionID, userID, def.Name, def.CreatedAt)
	return wrapDefinitionErr("create", resource, def.DefinitionID, err)
}

func (d *Database) GetDefinition(ctx context.Context, userID string, kind model.DefinitionKind, id string) (model.Definition, error) {
	def := model.Definition{Kind: kind}
	table, _, resource, err := definitionTable(kind)
	if err != nil {
		return def, err
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	err = d.DB.QueryRowContext(ctx, d.rebind("SELECT id, name, user_id, created_at FROM "+table+" WHERE id = ? AND user_id = ?"), id, userID).
		Scan(&def.DefinitionID, &def.Name, &def.CreatedBy, scanTime{&def.CreatedAt})
	return def, wrapDefinitionErr("get", resource, id, err)
}

func (d *Database) ListDefinitions(ctx context.Context, userID string, kind model.DefinitionKind) ([]model.Definition, error) {
	table, _, resource, err := definitionTable(kind)
	if err != nil {
		return nil, err
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, d.rebind("SELECT id, name, user_id, created_at FROM "+table+" WHERE user_id = ? ORDER BY name ASC"), userID)
	if err != nil {
		return nil, wrapDefinitionErr("list", resource, "", err)
	}
	defer rows.Close()

	defs := []model.Definition{}
	for rows.Next() {
		def := model.Definition{Kind: kind}
		if err := rows.Scan(&def.DefinitionID, &def.Name, &def.CreatedBy, scanTime{&def.CreatedAt}); err != nil {
			return nil, wrapDefinitionErr("list", resource, "", err)
		}
		defs = append(defs, def)
	}
	return defs, wrapDefinitionErr("list", resource, "", rows.Err())
}

func (d *Database) RenameDefinition(ctx context.Context, userID string, kind model.DefinitionKind, id, name string) error {
	table, _, resource, err := definitionTable(kind)
	if err != nil {
		return err
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, d.rebind("UPDATE "+table+" SET name = ? WHERE id = ? AND user_id = ?"), name, id, userID)
	if err == nil {
		err = requireAffected(res)
	}
	return wrapDefinitionErr("rename", resource, id, err)
}

// DeleteDefinition refuses to remove a record that tasks still point at.
func (d *Database) DeleteDefinition(ctx context.Context, userID string, kind model.DefinitionKind, id string) error {
	table, taskRef, resource, err := definitionTable(kind)
	if err != nil {
		return err
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		var refs int
		if err := tx.QueryRowContext(ctx, d.rebind("SELECT COUNT(1) FROM tasks WHERE "+taskRef+" = ? AND user_id = ?"), id, userID).Scan(&refs); err != nil {
			return err
		}
		if refs > 0 {
			return store.ErrHasDependents
		}
		res, err := tx.ExecContext(ctx, d.rebind("DELETE FROM "+table+" WHERE id = ? AND user_id = ?"), id, userID)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	return wrapDefinitionErr("delete", resource, id, err)
}
