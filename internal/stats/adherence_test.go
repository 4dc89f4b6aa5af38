package stats

import (
	"testing"
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

func everyDayHabit(id uint64, created time.Time) model.Habit {
	return model.Habit{ID: id, CreatedAt: created}
}

func TestDailyStats(t *testing.T) {
	created := day(2024, time.June, 1)
	target := day(2024, time.June, 10)

	tests := []struct {
		name          string
		habits        []model.Habit
		logs          []model.HabitLog
		wantAssigned  int
		wantCompleted int
		wantRate      float64
	}{
		{
			name:         "no habits due",
			habits:       nil,
			wantAssigned: 0, wantCompleted: 0, wantRate: 0,
		},
		{
			name: "two of three completed",
			habits: []model.Habit{
				everyDayHabit(1, created),
				everyDayHabit(2, created),
				everyDayHabit(3, created),
			},
			logs: []model.HabitLog{
				entry(1, target, model.StatusCompleted),
				entry(2, target, model.StatusCompleted),
				entry(3, target, model.StatusPartial),
			},
			wantAssigned: 3, wantCompleted: 2, wantRate: 66.67,
		},
		{
			name: "duplicate completed rows credit a habit once",
			habits: []model.Habit{
				everyDayHabit(1, created),
				everyDayHabit(2, created),
			},
			logs: []model.HabitLog{
				entry(1, target, model.StatusCompleted),
				entry(1, target, model.StatusCompleted),
			},
			wantAssigned: 2, wantCompleted: 1, wantRate: 50,
		},
		{
			name: "habit created after target is not assigned",
			habits: []model.Habit{
				everyDayHabit(1, created),
				everyDayHabit(2, day(2024, time.June, 15)),
			},
			logs: []model.HabitLog{
				entry(1, target, model.StatusCompleted),
			},
			wantAssigned: 1, wantCompleted: 1, wantRate: 100,
		},
		{
			name: "completed log from another day does not count",
			habits: []model.Habit{
				everyDayHabit(1, created),
			},
			logs: []model.HabitLog{
				entry(1, day(2024, time.June, 9), model.StatusCompleted),
			},
			wantAssigned: 1, wantCompleted: 0, wantRate: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyStats(tt.habits, tt.logs, target)
			if got.TotalAssigned != tt.wantAssigned {
				t.Errorf("TotalAssigned = %d, want %d", got.TotalAssigned, tt.wantAssigned)
			}
			if got.CompletedCount != tt.wantCompleted {
				t.Errorf("CompletedCount = %d, want %d", got.CompletedCount, tt.wantCompleted)
			}
			if got.DailyRate != tt.wantRate {
				t.Errorf("DailyRate = %v, want %v", got.DailyRate, tt.wantRate)
			}
			if got.CompletedCount > got.TotalAssigned {
				t.Errorf("completed %d exceeds assigned %d", got.CompletedCount, got.TotalAssigned)
			}
			if got.DailyRate < 0 || got.DailyRate > 100 {
				t.Errorf("rate %v out of [0,100]", got.DailyRate)
			}
		})
	}
}

func TestRateLevel(t *testing.T) {
	tests := []struct {
		rate  float64
		level int
	}{
		{0, 0},
		{0.01, 1},
		{39.99, 1},
		{40, 2},
		{64.99, 2},
		{65, 3},
		{79.99, 3},
		{80, 4},
		{100, 4},
	}
	for _, tt := range tests {
		if got := rateLevel(tt.rate); got != tt.level {
			t.Errorf("rateLevel(%v) = %d, want %d", tt.rate, got, tt.level)
		}
	}
}

func TestMonthlyHeatmap(t *testing.T) {
	created := day(2024, time.May, 1)
	today := day(2024, time.June, 10)
	habits := []model.Habit{everyDayHabit(1, created), everyDayHabit(2, created)}
	logs := []model.HabitLog{
		entry(1, day(2024, time.June, 1), model.StatusCompleted),
		entry(2, day(2024, time.June, 1), model.StatusCompleted),
		entry(1, day(2024, time.June, 2), model.StatusCompleted),
	}

	cells, err := MonthlyHeatmap(habits, logs, 2024, 6, today)
	if err != nil {
		t.Fatalf("MonthlyHeatmap() error = %v", err)
	}
	if len(cells) != 30 {
		t.Fatalf("got %d cells, want 30", len(cells))
	}

	// full completion on June 1
	if c := cells[0]; c.Total != 2 || c.Completed != 2 || c.Rate != 100 || c.Level != 4 {
		t.Errorf("June 1 cell = %+v", c)
	}
	// half completion on June 2
	if c := cells[1]; c.Total != 2 || c.Completed != 1 || c.Rate != 50 || c.Level != 2 {
		t.Errorf("June 2 cell = %+v", c)
	}
	// nothing logged June 3, habits still due
	if c := cells[2]; c.Total != 2 || c.Completed != 0 || c.Rate != 0 || c.Level != 0 {
		t.Errorf("June 3 cell = %+v", c)
	}
	// future days are zero-filled
	for i := 10; i < 30; i++ {
		c := cells[i]
		if c.Total != 0 || c.Completed != 0 || c.Rate != 0 || c.Level != 0 {
			t.Errorf("future cell %s = %+v, want zeroed", c.Date.Format("2006-01-02"), c)
		}
	}
	// cells ascend by date, both boundaries included
	if !cells[0].Date.Equal(day(2024, time.June, 1)) || !cells[29].Date.Equal(day(2024, time.June, 30)) {
		t.Errorf("boundary dates wrong: first=%s last=%s", cells[0].Date, cells[29].Date)
	}
}

func TestMonthlyHeatmapLeapFebruary(t *testing.T) {
	cells, err := MonthlyHeatmap(nil, nil, 2024, 2, day(2024, time.March, 15))
	if err != nil {
		t.Fatalf("MonthlyHeatmap() error = %v", err)
	}
	if len(cells) != 29 {
		t.Errorf("got %d cells for Feb 2024, want 29", len(cells))
	}
}

func TestMonthlyHeatmapInvalidMonth(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		if _, err := MonthlyHeatmap(nil, nil, 2024, m, day(2024, time.June, 10)); err != ErrInvalidMonth {
			t.Errorf("month %d: error = %v, want ErrInvalidMonth", m, err)
		}
	}
}
