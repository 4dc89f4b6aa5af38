package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/habit-tracker/internal/model"
	"github.com/iliyamo/habit-tracker/internal/repository"
	"github.com/iliyamo/habit-tracker/internal/stats"
)

// HabitHandler serves habit CRUD and the streak endpoint.
type HabitHandler struct {
	Habits *repository.HabitRepo
	Logs   *repository.HabitLogRepo
}

func NewHabitHandler(habits *repository.HabitRepo, logs *repository.HabitLogRepo) *HabitHandler {
	return &HabitHandler{Habits: habits, Logs: logs}
}

type habitReq struct {
	CategoryID  uint64   `json:"category_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Frequency   []int    `json:"frequency"`
	Unit        *string  `json:"unit"`
	TargetValue *float64 `json:"target_value"`
	Color       *string  `json:"color"`
}

type habitResp struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	CategoryID  uint64    `json:"category_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Frequency   []int     `json:"frequency"`
	Unit        *string   `json:"unit,omitempty"`
	TargetValue *float64  `json:"target_value,omitempty"`
	Color       *string   `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toHabitResp(h model.Habit) habitResp {
	freq := h.Frequency
	if freq == nil {
		freq = []int{} // keep the JSON field an array, not null
	}
	return habitResp{
		ID: h.ID, UserID: h.UserID, CategoryID: h.CategoryID, Name: h.Name,
		Description: h.Description, Frequency: freq, Unit: h.Unit,
		TargetValue: h.TargetValue, Color: h.Color, CreatedAt: h.CreatedAt,
	}
}

// validateFrequency rejects weekday codes outside 2..8.  Stored
// legacy junk degrades permissively at read time, but new writes are
// held to the convention.
func validateFrequency(freq []int) bool {
	for _, f := range freq {
		if f < model.WeekdayMonday || f > model.WeekdaySunday {
			return false
		}
	}
	return true
}

// Create adds a habit for the authenticated user.
func (h *HabitHandler) Create(c echo.Context) error {
	var req habitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.CategoryID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/category_id required"})
	}
	if !validateFrequency(req.Frequency) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "frequency codes must be 2..8 (Mon..Sun)"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	habit := model.Habit{
		UserID:      currentUserID(c),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		Unit:        req.Unit,
		TargetValue: req.TargetValue,
		Color:       req.Color,
	}
	if err := h.Habits.Create(ctx, &habit); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create habit failed"})
	}
	return c.JSON(http.StatusCreated, toHabitResp(habit))
}

// List returns the authenticated user's habits with paging.
func (h *HabitHandler) List(c echo.Context) error {
	offset, limit := paging(c, 100)

	ctx, cancel := reqContext(c)
	defer cancel()

	habits, err := h.Habits.ListByUser(ctx, currentUserID(c), offset, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]habitResp, 0, len(habits))
	for _, habit := range habits {
		out = append(out, toHabitResp(habit))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one habit owned by the caller.
func (h *HabitHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	habit, err := h.Habits.GetByID(ctx, id, currentUserID(c))
	if err != nil {
		return habitErr(c, err)
	}
	return c.JSON(http.StatusOK, toHabitResp(habit))
}

// Update overwrites the mutable fields of a habit.
func (h *HabitHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req habitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.CategoryID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/category_id required"})
	}
	if !validateFrequency(req.Frequency) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "frequency codes must be 2..8 (Mon..Sun)"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	habit := model.Habit{
		ID:          id,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		Unit:        req.Unit,
		TargetValue: req.TargetValue,
		Color:       req.Color,
	}
	if err := h.Habits.Update(ctx, &habit, currentUserID(c)); err != nil {
		return habitErr(c, err)
	}
	updated, err := h.Habits.GetByID(ctx, id, currentUserID(c))
	if err != nil {
		return habitErr(c, err)
	}
	return c.JSON(http.StatusOK, toHabitResp(updated))
}

// Delete removes a habit and, via cascade, its logs.
func (h *HabitHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Habits.Delete(ctx, id, currentUserID(c)); err != nil {
		return habitErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "habit deleted", "habit_id": id})
}

// Streak computes the habit's current streak from its full log
// history.  The reference day is server "today" (UTC) unless an
// explicit ?today=YYYY-MM-DD is given, which is mainly useful for
// clients in other timezones.
func (h *HabitHandler) Streak(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	today := time.Now().UTC()
	if s := c.QueryParam("today"); s != "" {
		today, err = parseDate(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "today must be YYYY-MM-DD"})
		}
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Habits.GetByID(ctx, id, currentUserID(c)); err != nil {
		return habitErr(c, err)
	}
	logs, err := h.Logs.ListAllByHabit(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"habit_id":   id,
		"streak":     stats.CurrentStreak(logs, today),
		"total_logs": len(logs),
	})
}

// habitErr maps repository sentinels onto HTTP responses.
func habitErr(c echo.Context, err error) error {
	switch err {
	case repository.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "habit not found"})
	case repository.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
}
