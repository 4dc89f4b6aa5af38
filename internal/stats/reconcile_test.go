package stats

import (
	"testing"
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

func TestReconcile(t *testing.T) {
	d1 := day(2024, time.June, 1)
	d2 := day(2024, time.June, 2)

	tests := []struct {
		name string
		logs []model.HabitLog
		want map[time.Time]model.LogStatus
	}{
		{
			name: "empty input yields empty map",
			logs: nil,
			want: map[time.Time]model.LogStatus{},
		},
		{
			name: "single entry per day passes through",
			logs: []model.HabitLog{
				entry(1, d1, model.StatusCompleted),
				entry(1, d2, model.StatusFailed),
			},
			want: map[time.Time]model.LogStatus{
				d1: model.StatusCompleted,
				d2: model.StatusFailed,
			},
		},
		{
			name: "higher priority overwrites regardless of order",
			logs: []model.HabitLog{
				entry(1, d1, model.StatusCompleted),
				entry(1, d1, model.StatusFailed),
			},
			want: map[time.Time]model.LogStatus{d1: model.StatusCompleted},
		},
		{
			name: "lower priority never overwrites",
			logs: []model.HabitLog{
				entry(1, d1, model.StatusPartial),
				entry(1, d1, model.StatusFailed),
			},
			want: map[time.Time]model.LogStatus{d1: model.StatusPartial},
		},
		{
			name: "equal priority keeps the first entry seen",
			logs: []model.HabitLog{
				entry(1, d1, model.StatusSkipped),
				entry(1, d1, model.StatusPartial),
			},
			want: map[time.Time]model.LogStatus{d1: model.StatusSkipped},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.logs)
			if len(got) != len(tt.want) {
				t.Fatalf("Reconcile() has %d days, want %d", len(got), len(tt.want))
			}
			for d, status := range tt.want {
				if got[d] != status {
					t.Errorf("day %s = %s, want %s", d.Format("2006-01-02"), got[d], status)
				}
			}
		})
	}
}
