// Package repository contains data access logic for habits. Habits
// are owner-scoped: every read or write verifies that the habit
// belongs to the requesting user and returns ErrForbidden otherwise.
// The weekly frequency set is stored as a CSV string in MySQL and
// coerced to typed weekday codes exactly once, at scan time; the
// rest of the application only ever sees []int.
package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/iliyamo/habit-tracker/internal/model"
)

// HabitRepo manages persistence for habits.
type HabitRepo struct{ DB *sql.DB }

func NewHabitRepo(db *sql.DB) *HabitRepo { return &HabitRepo{DB: db} }

const habitColumns = "id, user_id, category_id, name, description, frequency, unit, target_value, color, created_at"

// encodeFrequency serializes weekday codes to the CSV form stored in
// the frequency column.  An empty set becomes the empty string.
func encodeFrequency(freq []int) string {
	if len(freq) == 0 {
		return ""
	}
	parts := make([]string, 0, len(freq))
	for _, f := range freq {
		parts = append(parts, strconv.Itoa(f))
	}
	return strings.Join(parts, ",")
}

// decodeFrequency parses the stored CSV back into weekday codes.
// Blank and non-numeric fragments are dropped rather than rejected;
// legacy rows occasionally carry stray whitespace.
func decodeFrequency(s string) []int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var freq []int
	for _, p := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		freq = append(freq, n)
	}
	return freq
}

func scanHabit(scan func(dest ...any) error) (model.Habit, error) {
	var (
		h    model.Habit
		freq string
	)
	err := scan(&h.ID, &h.UserID, &h.CategoryID, &h.Name, &h.Description, &freq,
		&h.Unit, &h.TargetValue, &h.Color, &h.CreatedAt)
	if err != nil {
		return h, err
	}
	h.Frequency = decodeFrequency(freq)
	return h, nil
}

// Create inserts a habit and assigns the generated ID back to it.
func (r *HabitRepo) Create(ctx context.Context, h *model.Habit) error {
	const q = `INSERT INTO habits (user_id, category_id, name, description, frequency, unit, target_value, color)
	           VALUES (?,?,?,?,?,?,?,?)`
	res, err := r.DB.ExecContext(ctx, q,
		h.UserID, h.CategoryID, h.Name, h.Description, encodeFrequency(h.Frequency),
		h.Unit, h.TargetValue, h.Color)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)
	// fetch DB-default created_at so callers see the persisted value
	const sel = `SELECT created_at FROM habits WHERE id=?`
	return r.DB.QueryRowContext(ctx, sel, h.ID).Scan(&h.CreatedAt)
}

// GetByID retrieves a habit by id.  It returns ErrNotFound when no
// row exists and ErrForbidden when the habit belongs to another user.
func (r *HabitRepo) GetByID(ctx context.Context, id, userID uint64) (model.Habit, error) {
	h, err := scanHabit(r.DB.QueryRowContext(ctx,
		"SELECT "+habitColumns+" FROM habits WHERE id=? LIMIT 1", id).Scan)
	if err == sql.ErrNoRows {
		return h, ErrNotFound
	}
	if err != nil {
		return h, err
	}
	if h.UserID != userID {
		return model.Habit{}, ErrForbidden
	}
	return h, nil
}

// ListByUser returns the user's habits ordered by id with paging.
func (r *HabitRepo) ListByUser(ctx context.Context, userID uint64, offset, limit int) ([]model.Habit, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+habitColumns+" FROM habits WHERE user_id=? ORDER BY id LIMIT ? OFFSET ?",
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []model.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// ListAllByUser returns every habit of the user without paging.  The
// stats endpoints need the complete set to evaluate due-ness.
func (r *HabitRepo) ListAllByUser(ctx context.Context, userID uint64) ([]model.Habit, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+habitColumns+" FROM habits WHERE user_id=? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []model.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// Update overwrites the mutable fields of a habit after checking
// ownership.  CreatedAt and UserID never change.
func (r *HabitRepo) Update(ctx context.Context, h *model.Habit, userID uint64) error {
	if _, err := r.GetByID(ctx, h.ID, userID); err != nil {
		return err
	}
	const q = `UPDATE habits SET category_id=?, name=?, description=?, frequency=?, unit=?, target_value=?, color=?
	           WHERE id=?`
	_, err := r.DB.ExecContext(ctx, q,
		h.CategoryID, h.Name, h.Description, encodeFrequency(h.Frequency),
		h.Unit, h.TargetValue, h.Color, h.ID)
	return err
}

// Delete removes a habit after checking ownership.  Its logs cascade
// via the habit_logs foreign key.
func (r *HabitRepo) Delete(ctx context.Context, id, userID uint64) error {
	if _, err := r.GetByID(ctx, id, userID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM habits WHERE id=?", id)
	return err
}
