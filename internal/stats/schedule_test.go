package stats

import (
	"testing"
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

func TestIsDue(t *testing.T) {
	created := day(2024, time.June, 1) // a Saturday

	tests := []struct {
		name      string
		frequency []int
		date      time.Time
		want      bool
	}{
		{
			name:      "before creation date never due even if weekday matches",
			frequency: []int{model.WeekdayThursday},
			date:      day(2024, time.May, 30), // Thursday before creation
			want:      false,
		},
		{
			name:      "empty frequency means due every day",
			frequency: nil,
			date:      day(2024, time.June, 5),
			want:      true,
		},
		{
			name:      "weekday in set",
			frequency: []int{model.WeekdayMonday, model.WeekdayWednesday, model.WeekdayFriday},
			date:      day(2024, time.June, 3), // Monday
			want:      true,
		},
		{
			name:      "weekday not in set",
			frequency: []int{model.WeekdayMonday, model.WeekdayWednesday, model.WeekdayFriday},
			date:      day(2024, time.June, 4), // Tuesday
			want:      false,
		},
		{
			name:      "sunday uses code 8",
			frequency: []int{model.WeekdaySunday},
			date:      day(2024, time.June, 9), // Sunday
			want:      true,
		},
		{
			name:      "creation day itself is due",
			frequency: nil,
			date:      created,
			want:      true,
		},
		{
			name:      "out of domain codes never match",
			frequency: []int{0, 1, 9, 42},
			date:      day(2024, time.June, 5),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := model.Habit{ID: 1, Frequency: tt.frequency, CreatedAt: created}
			if got := IsDue(h, tt.date); got != tt.want {
				t.Errorf("IsDue(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestWeekdayCode(t *testing.T) {
	// 2024-06-03 is a Monday; walk the full week
	for i := 0; i < 7; i++ {
		d := day(2024, time.June, 3+i)
		want := 2 + i
		if got := WeekdayCode(d); got != want {
			t.Errorf("WeekdayCode(%s) = %d, want %d", d.Weekday(), got, want)
		}
	}
}
