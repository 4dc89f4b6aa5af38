// Package queue defines message payloads exchanged over the message broker.
package queue

// CheckInRecordedEvent is published after a check-in is written (or a
// batch of FAILED rows is backfilled).  It carries enough context for
// downstream consumers to log or notify without touching the primary
// database.
type CheckInRecordedEvent struct {
	UserID     uint64   `json:"user_id"`
	HabitID    uint64   `json:"habit_id"`
	HabitName  string   `json:"habit_name"`
	RecordDate string   `json:"record_date"` // YYYY-MM-DD
	Status     string   `json:"status"`
	Value      *float64 `json:"value,omitempty"`
	Streak     int      `json:"streak"`      // current streak after this check-in
	Source     string   `json:"source"`      // "checkin" or "autofail"
	RecordedAt string   `json:"recorded_at"` // RFC3339 UTC
}
