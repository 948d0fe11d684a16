package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mustafagenc/planly/model"
)

func effort(day time.Time, taskType model.TaskType, project string, days float64) model.WorkLog {
	return model.WorkLog{Date: day, TaskType: taskType, ProjectName: project, DaysWorked: days}
}

func TestAggregateYear_Empty(t *testing.T) {
	stats := AggregateYear(2026, nil)
	if len(stats.Months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(stats.Months))
	}
	for i, m := range stats.Months {
		if m.Month != i+1 || m.Total != 0 {
			t.Fatalf("unexpected month entry: %+v", m)
		}
	}
	if stats.GrandTotal != 0 || stats.AnnualPlanTotal != 0 || stats.AdHocTotal != 0 {
		t.Fatalf("expected zero totals: %+v", stats)
	}
}

func TestAggregateYear_Totals(t *testing.T) {
	logs := []model.WorkLog{
		effort(date(2026, 1, 5), model.TaskTypeAnnualPlan, "A", 1),
		effort(date(2026, 1, 6), model.TaskTypeAdHoc, "A", 0.5),
		effort(date(2026, 3, 2), model.TaskTypeAnnualPlan, "B", 1),
		effort(date(2026, 12, 31), model.TaskTypeAdHoc, "B", 1),
		effort(date(2025, 12, 31), model.TaskTypeAdHoc, "B", 1),
	}
	stats := AggregateYear(2026, logs)

	jan := stats.Months[0]
	if jan.AnnualPlanDays != 1 || jan.AdHocDays != 0.5 || jan.Total != 1.5 {
		t.Fatalf("unexpected january: %+v", jan)
	}
	if stats.AnnualPlanTotal != 2 || stats.AdHocTotal != 1.5 || stats.GrandTotal != 3.5 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	var sum float64
	for _, m := range stats.Months {
		if m.Total != m.AnnualPlanDays+m.AdHocDays {
			t.Fatalf("month %d total mismatch", m.Month)
		}
		sum += m.Total
	}
	if sum != stats.GrandTotal {
		t.Fatalf("grand total %v != sum of months %v", stats.GrandTotal, sum)
	}
}

func TestReportService_YearlyStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := NewMockEffortSource(ctrl)
	from, to := YearRange(2026)
	source.EXPECT().
		ListWorkLogs(gomock.Any(), "user-1", model.WorkLogFilter{From: from, To: to}).
		Return([]model.WorkLog{effort(date(2026, 4, 1), model.TaskTypeAdHoc, "A", 1)}, nil)

	stats, err := NewReportService(source).YearlyStats(context.Background(), "user-1", 2026)
	if err != nil {
		t.Fatalf("YearlyStats failed: %v", err)
	}
	if stats.Months[3].AdHocDays != 1 || stats.GrandTotal != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestReportService_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	source := NewMockEffortSource(ctrl)
	source.EXPECT().ListWorkLogs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	if _, err := NewReportService(source).YearlyStats(context.Background(), "u", 2026); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestBuildMonthlyReport(t *testing.T) {
	logs := []model.WorkLog{
		effort(date(2026, 2, 2), model.TaskTypeAnnualPlan, "Beta", 1),
		effort(date(2026, 2, 2), model.TaskTypeAdHoc, "Alpha", 0.5),
		effort(date(2026, 2, 3), model.TaskTypeAdHoc, "Alpha", 0.5),
		effort(date(2026, 2, 27), model.TaskTypeAnnualPlan, "Gamma", 2),
		effort(date(2026, 3, 1), model.TaskTypeAnnualPlan, "Gamma", 5),
	}
	report := BuildMonthlyReport(2026, time.February, logs)

	if report.TotalDays != 4 || report.AnnualPlanDays != 3 || report.AdHocDays != 1 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	if len(report.Daily) != 28 {
		t.Fatalf("expected 28 daily entries, got %d", len(report.Daily))
	}
	if d := report.Daily[1]; d.Day != 2 || d.AnnualPlan != 1 || d.AdHoc != 0.5 || d.Total != 1.5 {
		t.Fatalf("unexpected Feb 2 entry: %+v", d)
	}
	want := []model.ProjectEffort{{Project: "Gamma", Days: 2}, {Project: "Alpha", Days: 1}, {Project: "Beta", Days: 1}}
	if len(report.Projects) != len(want) {
		t.Fatalf("expected %d projects, got %+v", len(want), report.Projects)
	}
	for i := range want {
		if report.Projects[i] != want[i] {
			t.Fatalf("project %d = %+v, want %+v", i, report.Projects[i], want[i])
		}
	}
	if len(report.Logs) != 4 {
		t.Fatalf("expected 4 logs in february, got %d", len(report.Logs))
	}
}

func TestMonthlyReport_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewReportService(NewMockEffortSource(ctrl))
	var verr *ValidationError
	if _, err := svc.MonthlyReport(context.Background(), "u", 2026, 13); !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRenderYearlyPDF(t *testing.T) {
	var buf bytes.Buffer
	stats := AggregateYear(2026, []model.WorkLog{effort(date(2026, 5, 4), model.TaskTypeAnnualPlan, "A", 1.5)})
	if err := RenderYearlyPDF(&buf, stats); err != nil {
		t.Fatalf("RenderYearlyPDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestFormatDays(t *testing.T) {
	if got := formatDays(3); got != "3" {
		t.Fatalf("formatDays(3) = %q", got)
	}
	if got := formatDays(2.5); got != "2.5" {
		t.Fatalf("formatDays(2.5) = %q", got)
	}
}
