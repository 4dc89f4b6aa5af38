package stats

import (
	"sort"
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

// CurrentStreak computes the habit's current consecutive-success
// count as of today.  Only COMPLETED days add to the streak.
// PARTIAL and SKIPPED days act as bridges: they keep the chain alive
// without extending it.  FAILED breaks the chain, and so does any
// calendar gap between reconciled days.  If the habit has not been
// logged today or yesterday the streak has lapsed and the result is 0.
func CurrentStreak(logs []model.HabitLog, today time.Time) int {
	if len(logs) == 0 {
		return 0
	}

	days := Reconcile(logs)

	dates := make([]time.Time, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	yesterday := DateOf(today).AddDate(0, 0, -1)
	if dates[0].Before(yesterday) {
		return 0 // more than one silent day; the streak has fully lapsed
	}

	streak := 0
	expected := dates[0]
	for _, d := range dates {
		if !d.Equal(expected) {
			break // gap in the calendar chain
		}
		switch days[d] {
		case model.StatusCompleted:
			streak++
		case model.StatusPartial, model.StatusSkipped:
			// bridge: the chain survives but does not grow
		default:
			return streak // FAILED or unknown ends the chain here
		}
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
