package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

func scanWorkLog(row rowScanner) (model.WorkLog, error) {
	var l model.WorkLog
	var date string
	err := row.Scan(
		&l.WorkLogID, &l.TaskID, &date, &l.DaysWorked, &l.Description, &l.CreatedBy,
		scanTime{&l.CreatedAt}, &l.TaskTitle, &l.TaskType, &l.ProjectName,
	)
	if err != nil {
		return l, err
	}
	l.Date, err = parseDate(date)
	return l, err
}

// adjustDaysSpent moves a task's accumulator by delta, never below zero.
func (d *Database) adjustDaysSpent(ctx context.Context, tx *sql.Tx, userID, taskID string, delta float64) error {
	res, err := tx.ExecContext(ctx, d.rebind(`UPDATE tasks
		SET days_spent = CASE WHEN days_spent + ? < 0 THEN 0 ELSE days_spent + ? END, updated_at = ?
		WHERE id = ? AND user_id = ?`),
		delta, delta, time.Now().UTC(), taskID, userID)
	if err != nil {
		return err
	}
	if err := requireAffected(res); err != nil {
		return store.Wrap("adjust days spent", "task", taskID, err)
	}
	return nil
}

func (d *Database) CreateWorkLogs(ctx context.Context, userID string, logs []model.WorkLog) error {
	if len(logs) == 0 {
		return nil
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var taskOrder []string
	totals := map[string]float64{}
	for _, l := range logs {
		if _, seen := totals[l.TaskID]; !seen {
			taskOrder = append(taskOrder, l.TaskID)
		}
		totals[l.TaskID] += l.DaysWorked
	}

	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, taskID := range taskOrder {
			if err := d.adjustDaysSpent(ctx, tx, userID, taskID, totals[taskID]); err != nil {
				return err
			}
		}
		stmt, err := tx.PrepareContext(ctx, d.rebind(`INSERT INTO work_logs
			(id, user_id, task_id, log_date, days_worked, description, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`))
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i := range logs {
			l := &logs[i]
			l.CreatedBy = userID
			if _, err := stmt.ExecContext(ctx, l.WorkLogID, userID, l.TaskID, formatDate(l.Date),
				l.DaysWorked, l.Description, l.CreatedAt.UTC()); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapWorkLogErr("create", "", err)
}

func (d *Database) GetWorkLog(ctx context.Context, userID, workLogID string) (model.WorkLog, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	query, args := newWorkLogQuery(userID).Where("w.id = ?", workLogID).Build()
	l, err := scanWorkLog(d.DB.QueryRowContext(ctx, d.rebind(query), args...))
	return l, wrapWorkLogErr("get", workLogID, err)
}

func (d *Database) ListWorkLogs(ctx context.Context, userID string, filter model.WorkLogFilter) ([]model.WorkLog, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	q := newWorkLogQuery(userID)
	if !filter.From.IsZero() {
		q.Where("w.log_date >= ?", formatDate(filter.From))
	}
	if !filter.To.IsZero() {
		q.Where("w.log_date <= ?", formatDate(filter.To))
	}
	if filter.TaskID != "" {
		q.Where("w.task_id = ?", filter.TaskID)
	}
	query, args := q.OrderBy("w.log_date DESC, w.created_at DESC").Build()

	rows, err := d.DB.QueryContext(ctx, d.rebind(query), args...)
	if err != nil {
		return nil, wrapWorkLogErr("list", "", err)
	}
	defer rows.Close()

	logs := []model.WorkLog{}
	for rows.Next() {
		l, err := scanWorkLog(rows)
		if err != nil {
			return nil, wrapWorkLogErr("list", "", err)
		}
		logs = append(logs, l)
	}
	return logs, wrapWorkLogErr("list", "", rows.Err())
}

func (d *Database) UpdateWorkLog(ctx context.Context, userID string, log *model.WorkLog) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var taskID string
		var previous float64
		err := tx.QueryRowContext(ctx, d.rebind("SELECT task_id, days_worked FROM work_logs WHERE id = ? AND user_id = ?"),
			log.WorkLogID, userID).Scan(&taskID, &previous)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, d.rebind("UPDATE work_logs SET log_date = ?, days_worked = ?, description = ? WHERE id = ? AND user_id = ?"),
			formatDate(log.Date), log.DaysWorked, log.Description, log.WorkLogID, userID); err != nil {
			return err
		}
		log.TaskID = taskID
		if delta := log.DaysWorked - previous; delta != 0 {
			return d.adjustDaysSpent(ctx, tx, userID, taskID, delta)
		}
		return nil
	})
	return wrapWorkLogErr("update", log.WorkLogID, err)
}

func (d *Database) DeleteWorkLog(ctx context.Context, userID, workLogID string) (model.WorkLog, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	var removed model.WorkLog
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		query, args := newWorkLogQuery(userID).Where("w.id = ?", workLogID).Build()
		l, err := scanWorkLog(tx.QueryRowContext(ctx, d.rebind(query), args...))
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, d.rebind("DELETE FROM work_logs WHERE id = ? AND user_id = ?"), workLogID, userID); err != nil {
			return err
		}
		removed = l
		return d.adjustDaysSpent(ctx, tx, userID, l.TaskID, -l.DaysWorked)
	})
	return removed, wrapWorkLogErr("delete", workLogID, err)
}
