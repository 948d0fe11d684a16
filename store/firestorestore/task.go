package firestorestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

func (c *Client) CreateTask(ctx context.Context, userID string, task *model.Tasks) error {
	task.CreatedBy = userID
	_, err := c.fs.Collection(tasksCollection).Doc(task.TaskID).Create(ctx, task)
	return wrap("create", "task", task.TaskID, err)
}

func (c *Client) GetTask(ctx context.Context, userID, taskID string) (model.Tasks, error) {
	var task model.Tasks
	if err := getOwned(ctx, nil, c.fs.Collection(tasksCollection).Doc(taskID), userID, &task); err != nil {
		return task, wrap("get", "task", taskID, err)
	}
	names, err := c.definitionNames(ctx, userID)
	if err != nil {
		return task, wrap("get", "task", taskID, err)
	}
	resolveTaskNames(&task, names)
	return task, nil
}

// ListTasks pushes equality filters to Firestore and applies the text
// search and ordering in memory.
func (c *Client) ListTasks(ctx context.Context, userID string, filter model.TaskFilter) ([]model.Tasks, error) {
	q := c.owned(tasksCollection, userID)
	if filter.Type != "" {
		q = q.Where("type", "==", string(filter.Type))
	}
	if filter.Status != "" {
		q = q.Where("status", "==", string(filter.Status))
	}
	if filter.ProjectID != "" {
		q = q.Where("projectid", "==", filter.ProjectID)
	}
	if filter.Year != nil {
		q = q.Where("year", "==", *filter.Year)
	}
	tasks, err := collect[model.Tasks](q.Documents(ctx))
	if err != nil {
		return nil, wrap("list", "task", "", err)
	}

	if term := strings.ToLower(strings.TrimSpace(filter.Query)); term != "" {
		matched := tasks[:0]
		for _, t := range tasks {
			if strings.Contains(strings.ToLower(t.Title), term) ||
				strings.Contains(strings.ToLower(t.Detail), term) ||
				strings.Contains(strings.ToLower(t.TicketNo), term) {
				matched = append(matched, t)
			}
		}
		tasks = matched
	}

	names, err := c.definitionNames(ctx, userID)
	if err != nil {
		return nil, wrap("list", "task", "", err)
	}
	for i := range tasks {
		resolveTaskNames(&tasks[i], names)
	}
	sortTasks(tasks)
	return tasks, nil
}

func (c *Client) UpdateTask(ctx context.Context, userID string, task *model.Tasks) error {
	ref := c.fs.Collection(tasksCollection).Doc(task.TaskID)
	err := c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var current model.Tasks
		if err := getOwned(ctx, tx, ref, userID, &current); err != nil {
			return err
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "type", Value: string(task.Type)},
			{Path: "status", Value: string(task.Status)},
			{Path: "title", Value: task.Title},
			{Path: "detail", Value: task.Detail},
			{Path: "remarks", Value: task.Remarks},
			{Path: "ticketno", Value: task.TicketNo},
			{Path: "projectid", Value: task.ProjectID},
			{Path: "unitid", Value: task.UnitID},
			{Path: "responsibleid", Value: task.ResponsibleID},
			{Path: "coresponsible", Value: task.CoResponsible},
			{Path: "progress", Value: task.Progress},
			{Path: "estimateddays", Value: task.EstimatedDays},
			{Path: "year", Value: task.Year},
			{Path: "order", Value: task.Order},
			{Path: "updatedat", Value: task.UpdatedAt},
		})
	})
	return wrap("update", "task", task.TaskID, err)
}

// DeleteTask removes the task and its work logs in one transaction.
func (c *Client) DeleteTask(ctx context.Context, userID, taskID string) error {
	ref := c.fs.Collection(tasksCollection).Doc(taskID)
	err := c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var task model.Tasks
		if err := getOwned(ctx, tx, ref, userID, &task); err != nil {
			return err
		}
		logs, err := tx.Documents(c.owned(workLogsCollection, userID).Where("taskid", "==", taskID)).GetAll()
		if err != nil {
			return err
		}
		for _, doc := range logs {
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
		}
		return tx.Delete(ref)
	})
	return wrap("delete", "task", taskID, err)
}

func (c *Client) ReorderTasks(ctx context.Context, userID string, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	refs := make([]*firestore.DocumentRef, len(items))
	for i, item := range items {
		refs[i] = c.fs.Collection(tasksCollection).Doc(item.TaskID)
	}
	now := time.Now().UTC()
	err := c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.GetAll(refs)
		if err != nil {
			return err
		}
		for i, snap := range snaps {
			if !snap.Exists() {
				return store.Wrap("reorder", "task", items[i].TaskID, store.ErrNotFound)
			}
			if owner, err := snap.DataAt("createdby"); err != nil || owner != userID {
				return store.Wrap("reorder", "task", items[i].TaskID, store.ErrNotFound)
			}
		}
		for i, item := range items {
			if err := tx.Update(refs[i], []firestore.Update{
				{Path: "order", Value: item.Order},
				{Path: "updatedat", Value: now},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	return wrap("reorder", "task", "", err)
}

func (c *Client) CountTasks(ctx context.Context, userID string) (int, error) {
	docs, err := c.owned(tasksCollection, userID).Documents(ctx).GetAll()
	if err != nil {
		return 0, wrap("count", "task", "", err)
	}
	return len(docs), nil
}
