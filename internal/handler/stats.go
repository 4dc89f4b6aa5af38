package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/habit-tracker/internal/queue"
	"github.com/iliyamo/habit-tracker/internal/repository"
	queue_publisher "github.com/iliyamo/habit-tracker/internal/service"
	"github.com/iliyamo/habit-tracker/internal/stats"
)

// StatsHandler serves the adherence endpoints: daily completion
// rate, monthly heatmap and the explicit auto-fail trigger.  It
// eager-loads habits and logs from the repositories and hands plain
// snapshots to the stats engine; the engine itself does no I/O.
type StatsHandler struct {
	Habits *repository.HabitRepo
	Logs   *repository.HabitLogRepo
}

func NewStatsHandler(habits *repository.HabitRepo, logs *repository.HabitLogRepo) *StatsHandler {
	return &StatsHandler{Habits: habits, Logs: logs}
}

// Daily returns the caller's completion rate for one day
// (?date=YYYY-MM-DD, default today).
func (h *StatsHandler) Daily(c echo.Context) error {
	target := time.Now().UTC()
	if s := c.QueryParam("date"); s != "" {
		var err error
		target, err = parseDate(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
		}
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	userID := currentUserID(c)
	habits, err := h.Habits.ListAllByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	day := stats.DateOf(target)
	logs, err := h.Logs.ListByUserBetween(ctx, userID, day, day)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, stats.DailyStats(habits, logs, target))
}

// Heatmap returns one cell per day of the requested month
// (?year=&month=).  Future days come back zero-filled.
func (h *StatsHandler) Heatmap(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "year required"})
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "month required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	userID := currentUserID(c)
	habits, err := h.Habits.ListAllByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	logs, err := h.Logs.ListByUserBetween(ctx, userID, first, last)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	cells, err := stats.MonthlyHeatmap(habits, logs, year, month, time.Now().UTC())
	if err == stats.ErrInvalidMonth {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year/month"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "compute failed"})
	}
	return c.JSON(http.StatusOK, cells)
}

// AutoFail backfills FAILED entries for the caller's due-but-silent
// days over the trailing 7-day window.  It must be invoked
// explicitly; nothing in the server schedules it.  The write happens
// in one transaction with per-row existence checks, so re-running is
// harmless.
func (h *StatsHandler) AutoFail(c echo.Context) error {
	reference := time.Now().UTC()
	if s := c.QueryParam("date"); s != "" {
		var err error
		reference, err = parseDate(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
		}
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	userID := currentUserID(c)
	habits, err := h.Habits.ListAllByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(habits) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"created": 0})
	}

	windowStart := stats.DateOf(reference).AddDate(0, 0, -7)
	windowEnd := stats.DateOf(reference).AddDate(0, 0, -1)
	existing, err := h.Logs.ListByUserBetween(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	synthesized := stats.AutoFail(habits, existing, reference)
	created, err := h.Logs.CreateMissing(ctx, synthesized)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "backfill failed"})
	}

	if created > 0 {
		names := make(map[uint64]string, len(habits))
		for _, habit := range habits {
			names[habit.ID] = habit.Name
		}
		now := time.Now().UTC().Format(time.RFC3339)
		for _, l := range synthesized {
			_ = queue_publisher.PublishCheckInRecorded(ctx, queue.CheckInRecordedEvent{
				UserID:     userID,
				HabitID:    l.HabitID,
				HabitName:  names[l.HabitID],
				RecordDate: l.RecordDate.Format("2006-01-02"),
				Status:     string(l.Status),
				Value:      l.Value,
				Source:     "autofail",
				RecordedAt: now,
			})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"created": created})
}
