package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mustafagenc/planly/dto"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/store"
)

// maxBatchDays bounds a batch so it fits in one store transaction.
const maxBatchDays = 366

type WorkLogService struct {
	logs store.WorkLogStore
	now  func() time.Time
}

func NewWorkLogService(logs store.WorkLogStore) *WorkLogService {
	return &WorkLogService{logs: logs, now: time.Now}
}

// ExpandBatch drafts one full-day log per business day between start and
// end. A range that starts and ends on the same calendar day yields exactly
// one draft for that day, weekend or not.
func ExpandBatch(taskID string, start, end time.Time, description string) []model.WorkLog {
	from, to := DateOnly(start), DateOnly(end)
	days := BusinessDaysInRange(from, to)
	if from.Equal(to) {
		days = []time.Time{from}
	}
	drafts := make([]model.WorkLog, 0, len(days))
	for _, d := range days {
		drafts = append(drafts, model.WorkLog{
			TaskID:      taskID,
			Date:        d,
			DaysWorked:  1,
			Description: description,
		})
	}
	return drafts
}

func (s *WorkLogService) stamp(logs []model.WorkLog) {
	now := s.now().UTC()
	for i := range logs {
		logs[i].WorkLogID = uuid.NewString()
		logs[i].CreatedAt = now
	}
}

func (s *WorkLogService) CreateWorkLog(ctx context.Context, userID string, req dto.CreateWorkLogRequest) (model.WorkLog, error) {
	if err := validateStruct(req); err != nil {
		return model.WorkLog{}, err
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return model.WorkLog{}, invalid("date", "must be a date formatted %s", DateLayout)
	}
	logs := []model.WorkLog{{
		TaskID:      req.TaskID,
		Date:        date,
		DaysWorked:  req.DaysWorked,
		Description: req.Description,
	}}
	s.stamp(logs)
	if err := s.logs.CreateWorkLogs(ctx, userID, logs); err != nil {
		return model.WorkLog{}, err
	}
	return logs[0], nil
}

// CreateWorkLogBatch expands the range and commits every draft atomically.
// An empty expansion writes nothing and returns an empty slice.
func (s *WorkLogService) CreateWorkLogBatch(ctx context.Context, userID string, req dto.CreateWorkLogBatchRequest) ([]model.WorkLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	start, err := ParseDate(req.StartDate)
	if err != nil {
		return nil, invalid("startDate", "must be a date formatted %s", DateLayout)
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return nil, invalid("endDate", "must be a date formatted %s", DateLayout)
	}
	if end.Sub(start) > maxBatchDays*24*time.Hour {
		return nil, invalid("endDate", "range must not exceed %d days", maxBatchDays)
	}

	drafts := ExpandBatch(req.TaskID, start, end, req.Description)
	if len(drafts) == 0 {
		return drafts, nil
	}
	s.stamp(drafts)
	if err := s.logs.CreateWorkLogs(ctx, userID, drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (s *WorkLogService) UpdateWorkLog(ctx context.Context, userID, workLogID string, req dto.UpdateWorkLogRequest) (model.WorkLog, error) {
	if err := validateStruct(req); err != nil {
		return model.WorkLog{}, err
	}
	log, err := s.logs.GetWorkLog(ctx, userID, workLogID)
	if err != nil {
		return model.WorkLog{}, err
	}
	if req.Date != nil {
		date, err := ParseDate(*req.Date)
		if err != nil {
			return model.WorkLog{}, invalid("date", "must be a date formatted %s", DateLayout)
		}
		log.Date = date
	}
	if req.DaysWorked != nil {
		log.DaysWorked = *req.DaysWorked
	}
	if req.Description != nil {
		log.Description = *req.Description
	}
	if err := s.logs.UpdateWorkLog(ctx, userID, &log); err != nil {
		return model.WorkLog{}, err
	}
	return log, nil
}

func (s *WorkLogService) DeleteWorkLog(ctx context.Context, userID, workLogID string) (model.WorkLog, error) {
	return s.logs.DeleteWorkLog(ctx, userID, workLogID)
}

// ListWorkLogs narrows to a year, or a month of it, when given.
func (s *WorkLogService) ListWorkLogs(ctx context.Context, userID string, q dto.WorkLogQuery) ([]model.WorkLog, error) {
	if err := validateStruct(q); err != nil {
		return nil, err
	}
	filter := model.WorkLogFilter{TaskID: q.TaskID}
	switch {
	case q.Month != 0 && q.Year == 0:
		return nil, invalid("year", "is required when month is set")
	case q.Month != 0:
		filter.From, filter.To = MonthRange(q.Year, time.Month(q.Month))
	case q.Year != 0:
		filter.From, filter.To = YearRange(q.Year)
	}
	return s.logs.ListWorkLogs(ctx, userID, filter)
}
