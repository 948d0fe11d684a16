package services

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay(t *testing.T) {
	tests := []struct {
		day  time.Time
		want bool
	}{
		{date(2026, 2, 2), true},  // Monday
		{date(2026, 2, 6), true},  // Friday
		{date(2026, 2, 7), false}, // Saturday
		{date(2026, 2, 8), false}, // Sunday
	}
	for _, tt := range tests {
		if got := IsBusinessDay(tt.day); got != tt.want {
			t.Errorf("IsBusinessDay(%s) = %v, want %v", tt.day.Format(DateLayout), got, tt.want)
		}
	}
}

func TestBusinessDaysInRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"first weeks of february", date(2026, 2, 1), date(2026, 2, 19), 14},
		{"january", date(2026, 1, 1), date(2026, 1, 31), 22},
		{"february", date(2026, 2, 1), date(2026, 2, 28), 20},
		{"single weekday", date(2026, 2, 2), date(2026, 2, 2), 1},
		{"weekend only", date(2026, 2, 7), date(2026, 2, 8), 0},
		{"reversed", date(2026, 2, 19), date(2026, 2, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := BusinessDaysInRange(tt.start, tt.end)
			if len(days) != tt.want {
				t.Fatalf("expected %d days, got %d", tt.want, len(days))
			}
			for i, d := range days {
				if !IsBusinessDay(d) {
					t.Fatalf("%s is not a business day", d.Format(DateLayout))
				}
				if i > 0 && !d.After(days[i-1]) {
					t.Fatalf("days not strictly ascending at %d", i)
				}
			}
		})
	}
}

func TestBusinessDaysInRange_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 2, 2, 23, 30, 0, 0, time.UTC)
	end := time.Date(2026, 2, 3, 0, 15, 0, 0, time.UTC)
	days := BusinessDaysInRange(start, end)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if !days[0].Equal(date(2026, 2, 2)) {
		t.Fatalf("expected midnight of Feb 2, got %s", days[0])
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	if !first.Equal(date(2024, 2, 1)) || !last.Equal(date(2024, 2, 29)) {
		t.Fatalf("unexpected range %s..%s", first, last)
	}
}
