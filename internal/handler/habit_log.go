package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/habit-tracker/internal/model"
	"github.com/iliyamo/habit-tracker/internal/queue"
	"github.com/iliyamo/habit-tracker/internal/repository"
	queue_publisher "github.com/iliyamo/habit-tracker/internal/service"
	"github.com/iliyamo/habit-tracker/internal/stats"
)

// LogHandler serves check-ins and log history endpoints.
type LogHandler struct {
	Habits *repository.HabitRepo
	Logs   *repository.HabitLogRepo
}

func NewLogHandler(habits *repository.HabitRepo, logs *repository.HabitLogRepo) *LogHandler {
	return &LogHandler{Habits: habits, Logs: logs}
}

type checkInReq struct {
	HabitID    uint64   `json:"habit_id"`
	RecordDate string   `json:"record_date"` // YYYY-MM-DD
	Status     string   `json:"status"`
	Value      *float64 `json:"value"`
}

type logUpdateReq struct {
	Status string   `json:"status"`
	Value  *float64 `json:"value"`
}

type logResp struct {
	ID         uint64    `json:"id"`
	HabitID    uint64    `json:"habit_id"`
	RecordDate string    `json:"record_date"`
	Status     string    `json:"status"`
	Value      *float64  `json:"value,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toLogResp(l model.HabitLog) logResp {
	return logResp{
		ID:         l.ID,
		HabitID:    l.HabitID,
		RecordDate: l.RecordDate.Format("2006-01-02"),
		Status:     string(l.Status),
		Value:      l.Value,
		CreatedAt:  l.CreatedAt,
	}
}

// CheckIn records (or overwrites) the caller's check-in for one
// habit and day, then publishes a habit.checkin event carrying the
// recomputed streak.  Publishing is best-effort; a broker outage
// never fails the check-in.
func (h *LogHandler) CheckIn(c echo.Context) error {
	var req checkInReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.HabitID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "habit_id required"})
	}
	status := model.LogStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be COMPLETED, PARTIAL, SKIPPED or FAILED"})
	}
	recordDate, err := parseDate(req.RecordDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "record_date must be YYYY-MM-DD"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	habit, err := h.Habits.GetByID(ctx, req.HabitID, currentUserID(c))
	if err != nil {
		return habitErr(c, err)
	}

	entry := model.HabitLog{
		HabitID:    habit.ID,
		RecordDate: recordDate,
		Status:     status,
		Value:      req.Value,
	}
	if err := h.Logs.Upsert(ctx, &entry); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save log failed"})
	}

	streak := 0
	if logs, err := h.Logs.ListAllByHabit(ctx, habit.ID); err == nil {
		streak = stats.CurrentStreak(logs, time.Now().UTC())
	}

	_ = queue_publisher.PublishCheckInRecorded(ctx, queue.CheckInRecordedEvent{
		UserID:     habit.UserID,
		HabitID:    habit.ID,
		HabitName:  habit.Name,
		RecordDate: entry.RecordDate.Format("2006-01-02"),
		Status:     string(entry.Status),
		Value:      entry.Value,
		Streak:     streak,
		Source:     "checkin",
		RecordedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, toLogResp(entry))
}

// HistoryByHabit returns one habit's check-in history, newest first.
func (h *LogHandler) HistoryByHabit(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	offset, limit := paging(c, 30)

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Habits.GetByID(ctx, id, currentUserID(c)); err != nil {
		return habitErr(c, err)
	}
	logs, err := h.Logs.ListByHabit(ctx, id, offset, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]logResp, 0, len(logs))
	for _, l := range logs {
		out = append(out, toLogResp(l))
	}
	return c.JSON(http.StatusOK, out)
}

// ListMine returns the caller's logs across all habits, joined with
// habit names, newest first.
func (h *LogHandler) ListMine(c echo.Context) error {
	offset, limit := paging(c, 100)

	ctx, cancel := reqContext(c)
	defer cancel()

	logs, err := h.Logs.ListByUser(ctx, currentUserID(c), offset, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	type userLogResp struct {
		logResp
		HabitName string `json:"habit_name"`
	}
	out := make([]userLogResp, 0, len(logs))
	for _, l := range logs {
		out = append(out, userLogResp{logResp: toLogResp(l.HabitLog), HabitName: l.HabitName})
	}
	return c.JSON(http.StatusOK, out)
}

// ListAll returns every log in the system with habit and owner
// names.  Admin console only.
func (h *LogHandler) ListAll(c echo.Context) error {
	offset, limit := paging(c, 100)

	ctx, cancel := reqContext(c)
	defer cancel()

	logs, err := h.Logs.ListAll(ctx, offset, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	type adminLogResp struct {
		logResp
		HabitName    string `json:"habit_name"`
		UserFullName string `json:"user_full_name"`
	}
	out := make([]adminLogResp, 0, len(logs))
	for _, l := range logs {
		out = append(out, adminLogResp{logResp: toLogResp(l.HabitLog), HabitName: l.HabitName, UserFullName: l.UserFullName})
	}
	return c.JSON(http.StatusOK, out)
}

// Update overwrites the status/value of an existing log.  Members
// may only touch logs on habits they own.
func (h *LogHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req logUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := model.LogStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be COMPLETED, PARTIAL, SKIPPED or FAILED"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.authorizeLog(c, id); err != nil {
		return logErr(c, err)
	}
	updated, err := h.Logs.Update(ctx, id, status, req.Value)
	if err != nil {
		return logErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "log updated", "log": toLogResp(updated)})
}

// Delete removes a log row.
func (h *LogHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.authorizeLog(c, id); err != nil {
		return logErr(c, err)
	}
	if err := h.Logs.Delete(ctx, id); err != nil {
		return logErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "log deleted", "log_id": id})
}

// authorizeLog ensures the log belongs to the caller (admins pass).
// Returns a repository sentinel for the caller to map onto a
// response; nothing is written here.
func (h *LogHandler) authorizeLog(c echo.Context, logID uint64) error {
	if currentRole(c) == RoleAdmin {
		return nil
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	owner, err := h.Logs.OwnerOf(ctx, logID)
	if err != nil {
		return err
	}
	if owner != currentUserID(c) {
		return repository.ErrForbidden
	}
	return nil
}

func logErr(c echo.Context, err error) error {
	switch err {
	case repository.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "log not found"})
	case repository.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
}
