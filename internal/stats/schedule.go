package stats

import (
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

// IsDue reports whether the habit's schedule requires action on the
// given calendar date.  A habit is never due before its own creation
// date.  An empty frequency set means the habit is due every day;
// otherwise the date's weekday code (Mon=2 .. Sun=8) must be a member
// of the set.  Codes outside the 2..8 domain simply never match.
func IsDue(h model.Habit, date time.Time) bool {
	d := DateOf(date)
	if d.Before(DateOf(h.CreatedAt)) {
		return false
	}
	if len(h.Frequency) == 0 {
		return true
	}
	code := WeekdayCode(d)
	for _, f := range h.Frequency {
		if f == code {
			return true
		}
	}
	return false
}
