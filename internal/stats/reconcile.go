package stats

import (
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

// streakPriority orders statuses when several log rows land on the
// same day.  COMPLETED beats everything; PARTIAL and SKIPPED tie;
// FAILED loses to any of them.  Unknown statuses rank below FAILED
// so they can never displace a real entry.
var streakPriority = map[model.LogStatus]int{
	model.StatusCompleted: 3,
	model.StatusPartial:   2,
	model.StatusSkipped:   2,
	model.StatusFailed:    1,
}

// Reconcile collapses an unordered collection of log entries for one
// habit into a single authoritative status per calendar day.  A later
// entry overwrites an earlier one only when its priority is strictly
// greater, so the result is independent of input order.  Among
// equal-priority duplicates the first entry seen wins; since ties
// occur only within {PARTIAL, SKIPPED} the resulting status value is
// the same either way.
func Reconcile(logs []model.HabitLog) map[time.Time]model.LogStatus {
	days := make(map[time.Time]model.LogStatus, len(logs))
	for _, l := range logs {
		d := DateOf(l.RecordDate)
		cur, ok := days[d]
		if !ok || streakPriority[l.Status] > streakPriority[cur] {
			days[d] = l.Status
		}
	}
	return days
}
