package stats

import (
	"errors"
	"math"
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

// ErrInvalidMonth indicates a (year, month) pair outside the
// calendar domain was passed to MonthlyHeatmap.  Handlers should
// translate this into an HTTP 400 response.
var ErrInvalidMonth = errors.New("invalid month")

// DailySnapshot summarizes one day's adherence across a user's
// habit set.  It is derived and never persisted.
type DailySnapshot struct {
	Date           time.Time `json:"date"`
	TotalAssigned  int       `json:"total_assigned"`
	CompletedCount int       `json:"completed_count"`
	DailyRate      float64   `json:"daily_rate"`
}

// HeatmapCell is one calendar day in a monthly heatmap.  Level is a
// 0..4 intensity bucket derived from the completion rate.
type HeatmapCell struct {
	Date      time.Time `json:"date"`
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
	Rate      float64   `json:"rate"`
	Level     int       `json:"level"`
}

// roundRate rounds a percentage to two decimal places.
func roundRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(100*float64(completed)/float64(total)*100) / 100
}

// completedSet collects the distinct habit ids holding a COMPLETED
// log on the given date.  Duplicate rows for a day credit a habit
// at most once.
func completedSet(logs []model.HabitLog, date time.Time) map[uint64]bool {
	d := DateOf(date)
	done := make(map[uint64]bool)
	for _, l := range logs {
		if l.Status == model.StatusCompleted && DateOf(l.RecordDate).Equal(d) {
			done[l.HabitID] = true
		}
	}
	return done
}

// DailyStats computes the completion rate for target across the
// given habit set.  Only habits due on target (per IsDue) count
// toward the denominator; a habit contributes to the numerator when
// it has at least one COMPLETED log dated target.
func DailyStats(habits []model.Habit, logs []model.HabitLog, target time.Time) DailySnapshot {
	d := DateOf(target)
	snap := DailySnapshot{Date: d}

	due := make(map[uint64]bool)
	for _, h := range habits {
		if IsDue(h, d) {
			due[h.ID] = true
		}
	}
	snap.TotalAssigned = len(due)
	if snap.TotalAssigned == 0 {
		return snap
	}

	for id := range completedSet(logs, d) {
		if due[id] {
			snap.CompletedCount++
		}
	}
	snap.DailyRate = roundRate(snap.CompletedCount, snap.TotalAssigned)
	return snap
}

// rateLevel buckets a completion rate into a 0..4 heatmap intensity.
func rateLevel(rate float64) int {
	switch {
	case rate == 0:
		return 0
	case rate < 40:
		return 1
	case rate < 65:
		return 2
	case rate < 80:
		return 3
	default:
		return 4
	}
}

// MonthlyHeatmap produces one cell per calendar day of the requested
// month, ordered ascending by date.  Days after today are never
// evaluated and come back zero-filled.  The month must be in 1..12.
func MonthlyHeatmap(habits []model.Habit, logs []model.HabitLog, year, month int, today time.Time) ([]HeatmapCell, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidMonth
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	cutoff := DateOf(today)

	cells := make([]HeatmapCell, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		d := first.AddDate(0, 0, day-1)
		cell := HeatmapCell{Date: d}
		if d.After(cutoff) {
			cells = append(cells, cell)
			continue
		}
		for _, h := range habits {
			if IsDue(h, d) {
				cell.Total++
			}
		}
		if cell.Total > 0 {
			done := completedSet(logs, d)
			for _, h := range habits {
				if IsDue(h, d) && done[h.ID] {
					cell.Completed++
				}
			}
			cell.Rate = roundRate(cell.Completed, cell.Total)
		}
		cell.Level = rateLevel(cell.Rate)
		cells = append(cells, cell)
	}
	return cells, nil
}
