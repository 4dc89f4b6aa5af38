package stats

import (
	"testing"
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(habitID uint64, date time.Time, status model.LogStatus) model.HabitLog {
	return model.HabitLog{HabitID: habitID, RecordDate: date, Status: status}
}

func TestCurrentStreak(t *testing.T) {
	today := day(2024, time.June, 10)

	tests := []struct {
		name string
		logs []model.HabitLog
		want int
	}{
		{
			name: "no logs",
			logs: nil,
			want: 0,
		},
		{
			name: "bridge day survives, failed day breaks",
			logs: []model.HabitLog{
				entry(1, day(2024, time.June, 10), model.StatusCompleted),
				entry(1, day(2024, time.June, 9), model.StatusCompleted),
				entry(1, day(2024, time.June, 8), model.StatusSkipped),
				entry(1, day(2024, time.June, 7), model.StatusCompleted),
				entry(1, day(2024, time.June, 6), model.StatusFailed),
			},
			want: 3,
		},
		{
			name: "stale latest log resets to zero",
			logs: []model.HabitLog{
				entry(1, day(2024, time.June, 8), model.StatusCompleted),
				entry(1, day(2024, time.June, 7), model.StatusCompleted),
			},
			want: 0,
		},
		{
			name: "latest log yesterday still counts",
			logs: []model.HabitLog{
				entry(1, day(2024, time.June, 9), model.StatusCompleted),
				entry(1, day(2024, time.June, 8), model.StatusCompleted),
			},
			want: 2,
		},
		{
			name: "calendar gap breaks the chain even between completed days",
			logs: []model.HabitLog{
				entry(1, day(2024, time.June, 10), model.StatusCompleted),
				entry(1, day(2024, time.June, 8), model.StatusCompleted),
			},
			want: 1,
		},
		{
			name: "partial bridges without extending",
			logs: []model.HabitLog{
				entry(1, day(2024, time.June, 10), model.StatusCompleted),
				entry(1, day(2024, time.June, 9), model.StatusPartial),
				entry(1, day(2024, time.June, 8), model.StatusCompleted),
				entry(1, day(2024, time.June, 7), model.StatusCompleted),
			},
			want: 3,
		},
		{
			name: "streak of only bridge days is zero",
			logs: []model.HabitLog{
				entry(1, day(2024, time.June, 10), model.StatusSkipped),
				entry(1, day(2024, time.June, 9), model.StatusSkipped),
			},
			want: 0,
		},
		{
			name: "failed today means zero",
			logs: []model.HabitLog{
				entry(1, day(2024, time.June, 10), model.StatusFailed),
				entry(1, day(2024, time.June, 9), model.StatusCompleted),
			},
			want: 0,
		},
		{
			name: "duplicate rows on one day resolve by priority",
			logs: []model.HabitLog{
				entry(1, day(2024, time.June, 10), model.StatusFailed),
				entry(1, day(2024, time.June, 10), model.StatusCompleted),
				entry(1, day(2024, time.June, 9), model.StatusCompleted),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(tt.logs, today)
			if got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Permuting the input must never change the result: reconciliation
// and the descending walk are both order-independent.
func TestCurrentStreakOrderIndependent(t *testing.T) {
	today := day(2024, time.June, 10)
	logs := []model.HabitLog{
		entry(1, day(2024, time.June, 6), model.StatusFailed),
		entry(1, day(2024, time.June, 8), model.StatusSkipped),
		entry(1, day(2024, time.June, 10), model.StatusCompleted),
		entry(1, day(2024, time.June, 7), model.StatusCompleted),
		entry(1, day(2024, time.June, 9), model.StatusCompleted),
	}

	want := CurrentStreak(logs, today)
	// rotate the slice through every starting offset
	for shift := 1; shift < len(logs); shift++ {
		rotated := append(append([]model.HabitLog{}, logs[shift:]...), logs[:shift]...)
		if got := CurrentStreak(rotated, today); got != want {
			t.Errorf("shift %d: CurrentStreak() = %d, want %d", shift, got, want)
		}
	}
}

// Upgrading a FAILED day to COMPLETED must never shrink the streak.
func TestCurrentStreakPriorityMonotonic(t *testing.T) {
	today := day(2024, time.June, 10)
	base := []model.HabitLog{
		entry(1, day(2024, time.June, 10), model.StatusCompleted),
		entry(1, day(2024, time.June, 9), model.StatusFailed),
		entry(1, day(2024, time.June, 8), model.StatusCompleted),
	}
	before := CurrentStreak(base, today)

	upgraded := append([]model.HabitLog{}, base...)
	upgraded = append(upgraded, entry(1, day(2024, time.June, 9), model.StatusCompleted))
	after := CurrentStreak(upgraded, today)

	if after < before {
		t.Errorf("streak decreased after upgrade: before=%d after=%d", before, after)
	}
	if after != 3 {
		t.Errorf("upgraded streak = %d, want 3", after)
	}
}

func TestCurrentStreakNormalizesTimeComponents(t *testing.T) {
	today := day(2024, time.June, 10)
	logs := []model.HabitLog{
		{HabitID: 1, RecordDate: time.Date(2024, time.June, 10, 23, 15, 0, 0, time.UTC), Status: model.StatusCompleted},
		{HabitID: 1, RecordDate: time.Date(2024, time.June, 9, 8, 0, 0, 0, time.UTC), Status: model.StatusCompleted},
	}
	if got := CurrentStreak(logs, today); got != 2 {
		t.Errorf("CurrentStreak() = %d, want 2", got)
	}
}
