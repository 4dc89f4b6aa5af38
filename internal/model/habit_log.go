package model

import "time"

// LogStatus is the closed set of daily check-in outcomes.  Exactly
// one of these four values is stored per log row; there is no null
// status.
type LogStatus string

const (
	StatusCompleted LogStatus = "COMPLETED" // the habit was fully done
	StatusPartial   LogStatus = "PARTIAL"   // some progress, below target
	StatusSkipped   LogStatus = "SKIPPED"   // deliberately skipped (rest day)
	StatusFailed    LogStatus = "FAILED"    // missed, or synthesized by auto-fail
)

// Valid reports whether s is one of the four known statuses.
func (s LogStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusPartial, StatusSkipped, StatusFailed:
		return true
	}
	return false
}

// HabitLog records one check-in for a habit on a calendar date.
// RecordDate carries no time component; it is normalized to
// midnight UTC at the repository boundary.  The storage layer
// upserts on (habit_id, record_date) so a later check-in on the
// same day updates the existing row instead of duplicating it.
//
// Fields:
//  ID         – primary key identifier.
//  HabitID    – habit being checked in.
//  RecordDate – the calendar day the entry is for.
//  Status     – outcome for that day.
//  Value      – optional measured value (km run, pages read).
//  CreatedAt  – when the row was actually written (audit).
type HabitLog struct {
	ID         uint64    // habit_logs.id
	HabitID    uint64    // habit_logs.habit_id
	RecordDate time.Time // habit_logs.record_date (DATE column)
	Status     LogStatus // habit_logs.status
	Value      *float64  // habit_logs.value (nullable)
	CreatedAt  time.Time // habit_logs.created_at
}
