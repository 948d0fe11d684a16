package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

type TaskService struct {
	tasks store.TaskStore
	defs  store.DefinitionStore
	now   func() time.Time
}

func NewTaskService(tasks store.TaskStore, defs store.DefinitionStore) *TaskService {
	return &TaskService{tasks: tasks, defs: defs, now: time.Now}
}

// ApplyStatus moves a task to status, setting progress to 100 for DONE and 0
// for BACKLOG. Other statuses keep the current progress.
func ApplyStatus(task *model.Tasks, status model.TaskStatus) {
	task.Status = status
	switch status {
	case model.StatusDone:
		task.Progress = 100
	case model.StatusBacklog:
		task.Progress = 0
	}
}

// checkReference makes sure an optional definition id belongs to the user.
func (s *TaskService) checkReference(ctx context.Context, userID string, kind model.DefinitionKind, field string, id *string) error {
	if id == nil || *id == "" {
		return nil
	}
	if _, err := s.defs.GetDefinition(ctx, userID, kind, *id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return invalid(field, "references an unknown %s entry", kind)
		}
		return err
	}
	return nil
}

func (s *TaskService) checkReferences(ctx context.Context, userID string, task *model.Tasks) error {
	project := task.ProjectID
	if err := s.checkReference(ctx, userID, model.KindProject, "projectId", &project); err != nil {
		return err
	}
	if err := s.checkReference(ctx, userID, model.KindUnit, "unitId", task.UnitID); err != nil {
		return err
	}
	return s.checkReference(ctx, userID, model.KindPerson, "responsibleId", task.ResponsibleID)
}

func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

// CreateTask starts every task in BACKLOG with no progress and no effort.
func (s *TaskService) CreateTask(ctx context.Context, userID string, req dto.CreateTaskRequest) (model.Tasks, error) {
	if err := validateStruct(req); err != nil {
		return model.Tasks{}, err
	}
	now := s.now().UTC()
	task := model.Tasks{
		TaskID:        uuid.NewString(),
		Type:          model.TaskType(req.Type),
		Status:        model.StatusBacklog,
		Title:         req.Title,
		Detail:        req.Detail,
		Remarks:       req.Remarks,
		TicketNo:      req.TicketNo,
		ProjectID:     req.ProjectID,
		UnitID:        emptyToNil(req.UnitID),
		ResponsibleID: emptyToNil(req.ResponsibleID),
		CoResponsible: req.CoResponsible,
		EstimatedDays: req.EstimatedDays,
		Year:          req.Year,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.checkReferences(ctx, userID, &task); err != nil {
		return model.Tasks{}, err
	}
	if err := s.tasks.CreateTask(ctx, userID, &task); err != nil {
		return model.Tasks{}, err
	}
	return s.tasks.GetTask(ctx, userID, task.TaskID)
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID string) (model.Tasks, error) {
	return s.tasks.GetTask(ctx, userID, taskID)
}

func (s *TaskService) ListTasks(ctx context.Context, userID string, q dto.TaskQuery) ([]model.Tasks, error) {
	if err := validateStruct(q); err != nil {
		return nil, err
	}
	return s.tasks.ListTasks(ctx, userID, model.TaskFilter{
		Type:      model.TaskType(q.Type),
		Status:    model.TaskStatus(q.Status),
		ProjectID: q.ProjectID,
		Year:      q.Year,
		Query:     q.Query,
	})
}

// Board groups tasks by status. Every status has an entry, possibly empty.
func (s *TaskService) Board(ctx context.Context, userID string, q dto.TaskQuery) (map[model.TaskStatus][]model.Tasks, error) {
	q.Status = ""
	tasks, err := s.ListTasks(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	board := make(map[model.TaskStatus][]model.Tasks, len(model.TaskStatuses))
	for _, status := range model.TaskStatuses {
		board[status] = []model.Tasks{}
	}
	for _, t := range tasks {
		board[t.Status] = append(board[t.Status], t)
	}
	return board, nil
}

// UpdateTask applies a partial update. A status change applies the status
// progress defaults unless the same request sets progress explicitly.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, req dto.UpdateTaskRequest) (model.Tasks, error) {
	if err := validateStruct(req); err != nil {
		return model.Tasks{}, err
	}
	task, err := s.tasks.GetTask(ctx, userID, taskID)
	if err != nil {
		return model.Tasks{}, err
	}

	if req.Type != nil {
		task.Type = model.TaskType(*req.Type)
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Detail != nil {
		task.Detail = *req.Detail
	}
	if req.Remarks != nil {
		task.Remarks = *req.Remarks
	}
	if req.TicketNo != nil {
		task.TicketNo = *req.TicketNo
	}
	if req.ProjectID != nil {
		task.ProjectID = *req.ProjectID
	}
	if req.UnitID != nil {
		task.UnitID = emptyToNil(req.UnitID)
	}
	if req.ResponsibleID != nil {
		task.ResponsibleID = emptyToNil(req.ResponsibleID)
	}
	if req.CoResponsible != nil {
		task.CoResponsible = *req.CoResponsible
	}
	if req.EstimatedDays != nil {
		task.EstimatedDays = req.EstimatedDays
	}
	if req.Year != nil {
		task.Year = req.Year
	}
	if req.Order != nil {
		task.Order = *req.Order
	}
	if req.Status != nil && model.TaskStatus(*req.Status) != task.Status {
		ApplyStatus(&task, model.TaskStatus(*req.Status))
	}
	if req.Progress != nil {
		task.Progress = *req.Progress
	}

	if err := s.checkReferences(ctx, userID, &task); err != nil {
		return model.Tasks{}, err
	}
	task.UpdatedAt = s.now().UTC()
	if err := s.tasks.UpdateTask(ctx, userID, &task); err != nil {
		return model.Tasks{}, err
	}
	return s.tasks.GetTask(ctx, userID, taskID)
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, userID, taskID string, req dto.UpdateTaskStatusRequest) (model.Tasks, error) {
	if err := validateStruct(req); err != nil {
		return model.Tasks{}, err
	}
	task, err := s.tasks.GetTask(ctx, userID, taskID)
	if err != nil {
		return model.Tasks{}, err
	}
	ApplyStatus(&task, model.TaskStatus(req.Status))
	task.UpdatedAt = s.now().UTC()
	if err := s.tasks.UpdateTask(ctx, userID, &task); err != nil {
		return model.Tasks{}, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	return s.tasks.DeleteTask(ctx, userID, taskID)
}

func (s *TaskService) ReorderTasks(ctx context.Context, userID string, req dto.ReorderTasksRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.OrderItem{TaskID: item.ID, Order: item.Order}
	}
	return s.tasks.ReorderTasks(ctx, userID, items)
}
