package stats

import (
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

// habitDay identifies one habit on one calendar date.
type habitDay struct {
	habitID uint64
	date    time.Time
}

// AutoFail scans the 7 calendar days strictly before reference and
// synthesizes a FAILED entry (value 0) for every habit that was due
// on a day but has no log for it.  Existing rows are consulted first,
// so feeding the synthesized entries back in on a re-run yields
// nothing new.  The caller is responsible for persisting the result;
// no rows are written here.
func AutoFail(habits []model.Habit, existing []model.HabitLog, reference time.Time) []model.HabitLog {
	if len(habits) == 0 {
		return nil
	}

	logged := make(map[habitDay]bool, len(existing))
	for _, l := range existing {
		logged[habitDay{l.HabitID, DateOf(l.RecordDate)}] = true
	}

	ref := DateOf(reference)
	var created []model.HabitLog
	for offset := 1; offset <= 7; offset++ {
		check := ref.AddDate(0, 0, -offset)
		for _, h := range habits {
			if !IsDue(h, check) {
				continue
			}
			if logged[habitDay{h.ID, check}] {
				continue
			}
			v := 0.0
			created = append(created, model.HabitLog{
				HabitID:    h.ID,
				RecordDate: check,
				Status:     model.StatusFailed,
				Value:      &v,
			})
		}
	}
	return created
}
