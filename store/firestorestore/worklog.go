package firestorestore

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

func normalizeLog(l *model.WorkLog) {
	l.Date = l.Date.UTC()
	l.CreatedAt = l.CreatedAt.UTC()
}

// CreateWorkLogs checks every referenced task, increments them and writes
// the logs inside a single transaction.
func (c *Client) CreateWorkLogs(ctx context.Context, userID string, logs []model.WorkLog) error {
	if len(logs) == 0 {
		return nil
	}
	var taskOrder []string
	totals := map[string]float64{}
	for _, l := range logs {
		if _, seen := totals[l.TaskID]; !seen {
			taskOrder = append(taskOrder, l.TaskID)
		}
		totals[l.TaskID] += l.DaysWorked
	}

	tasks := c.fs.Collection(tasksCollection)
	err := c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, taskID := range taskOrder {
			var task model.Tasks
			if err := getOwned(ctx, tx, tasks.Doc(taskID), userID, &task); err != nil {
				return store.Wrap("create", "work log", taskID, translate(err))
			}
		}
		for _, taskID := range taskOrder {
			if err := tx.Update(tasks.Doc(taskID), []firestore.Update{
				{Path: "daysspent", Value: firestore.Increment(totals[taskID])},
			}); err != nil {
				return err
			}
		}
		for i := range logs {
			l := logs[i]
			l.CreatedBy = userID
			if err := tx.Create(c.fs.Collection(workLogsCollection).Doc(l.WorkLogID), l); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		for i := range logs {
			logs[i].CreatedBy = userID
		}
	}
	return wrap("create", "work log", "", err)
}

func (c *Client) enrichLogs(ctx context.Context, userID string, logs []model.WorkLog) error {
	tasks, err := collect[model.Tasks](c.owned(tasksCollection, userID).Documents(ctx))
	if err != nil {
		return err
	}
	names, err := c.definitionNames(ctx, userID)
	if err != nil {
		return err
	}
	byID := make(map[string]model.Tasks, len(tasks))
	for _, t := range tasks {
		byID[t.TaskID] = t
	}
	for i := range logs {
		normalizeLog(&logs[i])
		if t, ok := byID[logs[i].TaskID]; ok {
			logs[i].TaskTitle = t.Title
			logs[i].TaskType = t.Type
			logs[i].ProjectName = names[model.KindProject][t.ProjectID]
		}
	}
	return nil
}

func (c *Client) GetWorkLog(ctx context.Context, userID, workLogID string) (model.WorkLog, error) {
	var l model.WorkLog
	if err := getOwned(ctx, nil, c.fs.Collection(workLogsCollection).Doc(workLogID), userID, &l); err != nil {
		return l, wrap("get", "work log", workLogID, err)
	}
	logs := []model.WorkLog{l}
	if err := c.enrichLogs(ctx, userID, logs); err != nil {
		return l, wrap("get", "work log", workLogID, err)
	}
	return logs[0], nil
}

// ListWorkLogs filters by owner and task in Firestore and by date in memory,
// which avoids a composite index.
func (c *Client) ListWorkLogs(ctx context.Context, userID string, filter model.WorkLogFilter) ([]model.WorkLog, error) {
	q := c.owned(workLogsCollection, userID)
	if filter.TaskID != "" {
		q = q.Where("taskid", "==", filter.TaskID)
	}
	all, err := collect[model.WorkLog](q.Documents(ctx))
	if err != nil {
		return nil, wrap("list", "work log", "", err)
	}
	logs := all[:0]
	for _, l := range all {
		d := l.Date.UTC()
		if !filter.From.IsZero() && d.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && d.After(filter.To) {
			continue
		}
		logs = append(logs, l)
	}
	if err := c.enrichLogs(ctx, userID, logs); err != nil {
		return nil, wrap("list", "work log", "", err)
	}
	sort.SliceStable(logs, func(i, j int) bool {
		if !logs[i].Date.Equal(logs[j].Date) {
			return logs[i].Date.After(logs[j].Date)
		}
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	return logs, nil
}

// shiftDaysSpent reads the task inside tx and writes back the clamped total.
func shiftDaysSpent(ctx context.Context, tx *firestore.Transaction, ref *firestore.DocumentRef, userID string, delta float64) (func() error, error) {
	var task model.Tasks
	if err := getOwned(ctx, tx, ref, userID, &task); err != nil {
		return nil, err
	}
	next := task.DaysSpent + delta
	if next < 0 {
		next = 0
	}
	return func() error {
		return tx.Update(ref, []firestore.Update{{Path: "daysspent", Value: next}})
	}, nil
}

func (c *Client) UpdateWorkLog(ctx context.Context, userID string, log *model.WorkLog) error {
	ref := c.fs.Collection(workLogsCollection).Doc(log.WorkLogID)
	err := c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current model.WorkLog
		if err := getOwned(ctx, tx, ref, userID, &current); err != nil {
			return err
		}
		writeTask, err := shiftDaysSpent(ctx, tx, c.fs.Collection(tasksCollection).Doc(current.TaskID), userID, log.DaysWorked-current.DaysWorked)
		if err != nil {
			return err
		}
		log.TaskID = current.TaskID
		if err := tx.Update(ref, []firestore.Update{
			{Path: "date", Value: log.Date.UTC()},
			{Path: "daysworked", Value: log.DaysWorked},
			{Path: "description", Value: log.Description},
		}); err != nil {
			return err
		}
		return writeTask()
	})
	return wrap("update", "work log", log.WorkLogID, err)
}

func (c *Client) DeleteWorkLog(ctx context.Context, userID, workLogID string) (model.WorkLog, error) {
	ref := c.fs.Collection(workLogsCollection).Doc(workLogID)
	var removed model.WorkLog
	err := c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var l model.WorkLog
		if err := getOwned(ctx, tx, ref, userID, &l); err != nil {
			return err
		}
		writeTask, err := shiftDaysSpent(ctx, tx, c.fs.Collection(tasksCollection).Doc(l.TaskID), userID, -l.DaysWorked)
		if err != nil {
			return err
		}
		if err := tx.Delete(ref); err != nil {
			return err
		}
		removed = l
		return writeTask()
	})
	normalizeLog(&removed)
	return removed, wrap("delete", "work log", workLogID, err)
}
