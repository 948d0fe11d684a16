package model

// MonthlyBreakdown is one calendar month of a YearlyStats. Month is 1-based.
type MonthlyBreakdown struct {
	Month          int     `json:"month"`
	AnnualPlanDays float64 `json:"annualPlanDays"`
	AdHocDays      float64 `json:"adHocDays"`
	Total          float64 `json:"total"`
}

type YearlyStats struct {
	Year            int                `json:"year"`
	Months          []MonthlyBreakdown `json:"months"`
	AnnualPlanTotal float64            `json:"annualPlanTotal"`
	AdHocTotal      float64            `json:"adHocTotal"`
	GrandTotal      float64            `json:"grandTotal"`
}

type DailyEffort struct {
	Day        int     `json:"day"`
	AnnualPlan float64 `json:"annualPlan"`
	AdHoc      float64 `json:"adHoc"`
	Total      float64 `json:"total"`
}

type ProjectEffort struct {
	Project string  `json:"project"`
	Days    float64 `json:"days"`
}

type MonthlyReport struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TotalDays      float64         `json:"totalDays"`
	AnnualPlanDays float64         `json:"annualPlanDays"`
	AdHocDays      float64         `json:"adHocDays"`
	Projects       []ProjectEffort `json:"projects"`
	Daily          []DailyEffort   `json:"daily"`
	Logs           []WorkLog       `json:"logs"`
}
