package stats

import (
	"testing"
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

func TestAutoFail(t *testing.T) {
	created := day(2024, time.May, 1)
	reference := day(2024, time.June, 10)

	t.Run("no habits is a no-op", func(t *testing.T) {
		if got := AutoFail(nil, nil, reference); len(got) != 0 {
			t.Errorf("got %d entries, want 0", len(got))
		}
	})

	t.Run("every-day habit with no logs fills all seven days", func(t *testing.T) {
		habits := []model.Habit{everyDayHabit(1, created)}
		got := AutoFail(habits, nil, reference)
		if len(got) != 7 {
			t.Fatalf("got %d entries, want 7", len(got))
		}
		seen := map[time.Time]bool{}
		for _, l := range got {
			if l.Status != model.StatusFailed {
				t.Errorf("status = %s, want FAILED", l.Status)
			}
			if l.Value == nil || *l.Value != 0 {
				t.Errorf("value = %v, want 0", l.Value)
			}
			if !l.RecordDate.Before(reference) {
				t.Errorf("date %s not strictly before reference", l.RecordDate)
			}
			seen[l.RecordDate] = true
		}
		if len(seen) != 7 {
			t.Errorf("got %d distinct days, want 7", len(seen))
		}
	})

	t.Run("rerun with synthesized rows creates nothing", func(t *testing.T) {
		habits := []model.Habit{everyDayHabit(1, created)}
		first := AutoFail(habits, nil, reference)
		second := AutoFail(habits, first, reference)
		if len(second) != 0 {
			t.Errorf("second run created %d entries, want 0", len(second))
		}
	})

	t.Run("already logged days are skipped", func(t *testing.T) {
		habits := []model.Habit{everyDayHabit(1, created)}
		existing := []model.HabitLog{
			entry(1, day(2024, time.June, 9), model.StatusCompleted),
			entry(1, day(2024, time.June, 5), model.StatusSkipped),
		}
		got := AutoFail(habits, existing, reference)
		if len(got) != 5 {
			t.Errorf("got %d entries, want 5", len(got))
		}
		for _, l := range got {
			if l.RecordDate.Equal(day(2024, time.June, 9)) || l.RecordDate.Equal(day(2024, time.June, 5)) {
				t.Errorf("synthesized entry for already-logged day %s", l.RecordDate)
			}
		}
	})

	t.Run("schedule and creation date bound the window", func(t *testing.T) {
		// due Mon/Wed/Fri only; window June 3..9 holds Mon 3, Wed 5, Fri 7
		scheduled := model.Habit{
			ID:        2,
			Frequency: []int{model.WeekdayMonday, model.WeekdayWednesday, model.WeekdayFriday},
			CreatedAt: created,
		}
		// created mid-window: only days on or after June 7 qualify
		young := model.Habit{ID: 3, CreatedAt: day(2024, time.June, 7)}

		got := AutoFail([]model.Habit{scheduled, young}, nil, reference)
		var forScheduled, forYoung int
		for _, l := range got {
			switch l.HabitID {
			case 2:
				forScheduled++
			case 3:
				forYoung++
				if l.RecordDate.Before(day(2024, time.June, 7)) {
					t.Errorf("entry before creation date: %s", l.RecordDate)
				}
			}
		}
		if forScheduled != 3 {
			t.Errorf("scheduled habit got %d entries, want 3", forScheduled)
		}
		if forYoung != 3 { // June 7, 8, 9
			t.Errorf("young habit got %d entries, want 3", forYoung)
		}
	})
}
