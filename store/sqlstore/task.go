package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (model.Tasks, error) {
	var t model.Tasks
	var unitID, responsibleID sql.NullString
	var estimated sql.NullFloat64
	var year sql.NullInt64
	err := row.Scan(
		&t.TaskID, &t.Type, &t.Status, &t.Title, &t.Detail, &t.Remarks, &t.TicketNo,
		&t.ProjectID, &unitID, &responsibleID, &t.CoResponsible, &t.Progress, &t.DaysSpent,
		&estimated, &year, &t.Order, &t.CreatedBy, scanTime{&t.CreatedAt}, scanTime{&t.UpdatedAt},
		&t.ProjectName, &t.UnitName, &t.ResponsibleName,
	)
	if err != nil {
		return t, err
	}
	t.UnitID = stringPtr(unitID)
	t.ResponsibleID = stringPtr(responsibleID)
	t.EstimatedDays = floatPtr(estimated)
	t.Year = intPtr(year)
	return t, nil
}

func (d *Database) CreateTask(ctx context.Context, userID string, task *model.Tasks) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	task.CreatedBy = userID
	_, err := d.DB.ExecContext(ctx, d.rebind(`INSERT INTO tasks
		(id, user_id, type, status, title, detail, remarks, ticket_no, project_id, unit_id,
		 responsible_id, co_responsible, progress, days_spent, estimated_days, year, sort_order,
		 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		task.TaskID, userID, string(task.Type), string(task.Status), task.Title, task.Detail,
		task.Remarks, task.TicketNo, task.ProjectID, nullableString(task.UnitID),
		nullableString(task.ResponsibleID), task.CoResponsible, task.Progress, task.DaysSpent,
		toNullableArg(task.EstimatedDays), toNullableArg(task.Year), task.Order,
		task.CreatedAt.UTC(), task.UpdatedAt.UTC())
	return wrapTaskErr("create", task.TaskID, err)
}

func (d *Database) GetTask(ctx context.Context, userID, taskID string) (model.Tasks, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	query, args := newTaskQuery(userID).Where("t.id = ?", taskID).Build()
	t, err := scanTask(d.DB.QueryRowContext(ctx, d.rebind(query), args...))
	return t, wrapTaskErr("get", taskID, err)
}

func (d *Database) ListTasks(ctx context.Context, userID string, filter model.TaskFilter) ([]model.Tasks, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	q := newTaskQuery(userID)
	if filter.Type != "" {
		q.Where("t.type = ?", string(filter.Type))
	}
	if filter.Status != "" {
		q.Where("t.status = ?", string(filter.Status))
	}
	if filter.ProjectID != "" {
		q.Where("t.project_id = ?", filter.ProjectID)
	}
	if filter.Year != nil {
		q.Where("t.year = ?", *filter.Year)
	}
	if term := strings.TrimSpace(filter.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q.Where("(LOWER(t.title) LIKE ? OR LOWER(t.detail) LIKE ? OR LOWER(t.ticket_no) LIKE ?)", like, like, like)
	}
	query, args := q.OrderBy("t.sort_order ASC, t.created_at DESC").Build()

	rows, err := d.DB.QueryContext(ctx, d.rebind(query), args...)
	if err != nil {
		return nil, wrapTaskErr("list", "", err)
	}
	defer rows.Close()

	tasks := []model.Tasks{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, wrapTaskErr("list", "", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, wrapTaskErr("list", "", rows.Err())
}

func (d *Database) UpdateTask(ctx context.Context, userID string, task *model.Tasks) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := d.DB.ExecContext(ctx, d.rebind(`UPDATE tasks SET
		type = ?, status = ?, title = ?, detail = ?, remarks = ?, ticket_no = ?, project_id = ?,
		unit_id = ?, responsible_id = ?, co_responsible = ?, progress = ?, estimated_days = ?,
		year = ?, sort_order = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`),
		string(task.Type), string(task.Status), task.Title, task.Detail, task.Remarks, task.TicketNo,
		task.ProjectID, nullableString(task.UnitID), nullableString(task.ResponsibleID),
		task.CoResponsible, task.Progress, toNullableArg(task.EstimatedDays), toNullableArg(task.Year),
		task.Order, task.UpdatedAt.UTC(), task.TaskID, userID)
	if err != nil {
		return wrapTaskErr("update", task.TaskID, err)
	}
	return wrapTaskErr("update", task.TaskID, requireAffected(res))
}

func (d *Database) DeleteTask(ctx context.Context, userID, taskID string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, d.rebind("DELETE FROM work_logs WHERE task_id = ? AND user_id = ?"), taskID, userID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, d.rebind("DELETE FROM tasks WHERE id = ? AND user_id = ?"), taskID, userID)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	return wrapTaskErr("delete", taskID, err)
}

func (d *Database) ReorderTasks(ctx context.Context, userID string, items []model.OrderItem) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	now := time.Now().UTC()
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, d.rebind("UPDATE tasks SET sort_order = ?, updated_at = ? WHERE id = ? AND user_id = ?"))
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, item := range items {
			res, err := stmt.ExecContext(ctx, item.Order, now, item.TaskID, userID)
			if err != nil {
				return err
			}
			if err := requireAffected(res); err != nil {
				return store.Wrap("reorder", "task", item.TaskID, err)
			}
		}
		return nil
	})
	return wrapTaskErr("reorder", "", err)
}

func (d *Database) CountTasks(ctx context.Context, userID string) (int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	var n int
	err := d.DB.QueryRowContext(ctx, d.rebind("SELECT COUNT(1) FROM tasks WHERE user_id = ?"), userID).Scan(&n)
	return n, wrapTaskErr("count", "", err)
}
