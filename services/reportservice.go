package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mustafagenc/planly/model"
)

//go:generate mockgen -destination=mock_effortsource_test.go -package=services . EffortSource

// EffortSource is the read side the aggregations need.
type EffortSource interface {
	ListWorkLogs(ctx context.Context, userID string, filter model.WorkLogFilter) ([]model.WorkLog, error)
}

type ReportService struct {
	source EffortSource
}

func NewReportService(source EffortSource) *ReportService {
	return &ReportService{source: source}
}

func (s *ReportService) YearlyStats(ctx context.Context, userID string, year int) (model.YearlyStats, error) {
	from, to := YearRange(year)
	logs, err := s.source.ListWorkLogs(ctx, userID, model.WorkLogFilter{From: from, To: to})
	if err != nil {
		return model.YearlyStats{}, fmt.Errorf("load %d work logs: %w", year, err)
	}
	return AggregateYear(year, logs), nil
}

func (s *ReportService) MonthlyReport(ctx context.Context, userID string, year int, month time.Month) (model.MonthlyReport, error) {
	if month < time.January || month > time.December {
		return model.MonthlyReport{}, invalid("month", "must be between 1 and 12")
	}
	from, to := MonthRange(year, month)
	logs, err := s.source.ListWorkLogs(ctx, userID, model.WorkLogFilter{From: from, To: to})
	if err != nil {
		return model.MonthlyReport{}, fmt.Errorf("load %d-%02d work logs: %w", year, month, err)
	}
	return BuildMonthlyReport(year, month, logs), nil
}

// AggregateYear buckets logs of the given year into twelve months by task
// type. Logs from other years are ignored.
func AggregateYear(year int, logs []model.WorkLog) model.YearlyStats {
	stats := model.YearlyStats{Year: year, Months: make([]model.MonthlyBreakdown, 12)}
	for i := range stats.Months {
		stats.Months[i].Month = i + 1
	}
	for _, l := range logs {
		if l.Date.Year() != year {
			continue
		}
		m := &stats.Months[l.Date.Month()-1]
		switch l.TaskType {
		case model.TaskTypeAnnualPlan:
			m.AnnualPlanDays += l.DaysWorked
		case model.TaskTypeAdHoc:
			m.AdHocDays += l.DaysWorked
		}
	}
	for i := range stats.Months {
		m := &stats.Months[i]
		m.Total = m.AnnualPlanDays + m.AdHocDays
		stats.AnnualPlanTotal += m.AnnualPlanDays
		stats.AdHocTotal += m.AdHocDays
	}
	stats.GrandTotal = stats.AnnualPlanTotal + stats.AdHocTotal
	return stats
}

// BuildMonthlyReport totals one month, splits it per project (largest
// first) and per calendar day.
func BuildMonthlyReport(year int, month time.Month, logs []model.WorkLog) model.MonthlyReport {
	first, last := MonthRange(year, month)
	report := model.MonthlyReport{
		Year:     year,
		Month:    int(month),
		Projects: []model.ProjectEffort{},
		Daily:    make([]model.DailyEffort, last.Day()),
		Logs:     []model.WorkLog{},
	}
	for i := range report.Daily {
		report.Daily[i].Day = i + 1
	}

	byProject := map[string]float64{}
	for _, l := range logs {
		d := DateOnly(l.Date)
		if d.Before(first) || d.After(last) {
			continue
		}
		report.Logs = append(report.Logs, l)
		day := &report.Daily[d.Day()-1]
		switch l.TaskType {
		case model.TaskTypeAnnualPlan:
			report.AnnualPlanDays += l.DaysWorked
			day.AnnualPlan += l.DaysWorked
		case model.TaskTypeAdHoc:
			report.AdHocDays += l.DaysWorked
			day.AdHoc += l.DaysWorked
		}
		day.Total = day.AnnualPlan + day.AdHoc
		byProject[l.ProjectName] += l.DaysWorked
	}
	report.TotalDays = report.AnnualPlanDays + report.AdHocDays

	for name, days := range byProject {
		report.Projects = append(report.Projects, model.ProjectEffort{Project: name, Days: days})
	}
	sort.Slice(report.Projects, func(i, j int) bool {
		a, b := report.Projects[i], report.Projects[j]
		if a.Days != b.Days {
			return a.Days > b.Days
		}
		return a.Project < b.Project
	})
	return report
}
