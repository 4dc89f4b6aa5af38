// Package repository contains data access logic for habit logs.
// Check-ins upsert on (habit_id, record_date): a later check-in for
// the same day updates the existing row instead of adding another.
// The only writer that inserts in bulk is the auto-fail path, which
// runs in one transaction and re-checks existence per row so that
// concurrent invocations cannot double-create meaningfully different
// rows (read-time reconciliation absorbs the narrow race).
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/habit-tracker/internal/model"
)

// HabitLogRepo manages persistence for habit logs.
type HabitLogRepo struct{ DB *sql.DB }

func NewHabitLogRepo(db *sql.DB) *HabitLogRepo { return &HabitLogRepo{DB: db} }

const logColumns = "id, habit_id, record_date, status, value, created_at"

func scanLog(scan func(dest ...any) error) (model.HabitLog, error) {
	var l model.HabitLog
	err := scan(&l.ID, &l.HabitID, &l.RecordDate, &l.Status, &l.Value, &l.CreatedAt)
	return l, err
}

// UserLog is a habit log joined with the owning habit's name, used
// by the user-wide history listing.
type UserLog struct {
	model.HabitLog
	HabitName string
}

// AdminLog additionally carries the owner's display name for the
// admin console listing.
type AdminLog struct {
	model.HabitLog
	HabitName    string
	UserFullName string
}

// Upsert records a check-in.  If a row already exists for the
// habit/date pair its status and value are overwritten; otherwise a
// new row is inserted.  The written row is returned with ID and
// created_at populated.
func (r *HabitLogRepo) Upsert(ctx context.Context, l *model.HabitLog) error {
	var existingID uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM habit_logs WHERE habit_id=? AND record_date=? LIMIT 1",
		l.HabitID, l.RecordDate).Scan(&existingID)
	switch err {
	case nil:
		l.ID = existingID
		if _, err := r.DB.ExecContext(ctx,
			"UPDATE habit_logs SET status=?, value=? WHERE id=?",
			l.Status, l.Value, l.ID); err != nil {
			return err
		}
	case sql.ErrNoRows:
		res, err := r.DB.ExecContext(ctx,
			"INSERT INTO habit_logs (habit_id, record_date, status, value) VALUES (?,?,?,?)",
			l.HabitID, l.RecordDate, l.Status, l.Value)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		l.ID = uint64(id)
	default:
		return err
	}
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM habit_logs WHERE id=?", l.ID).Scan(&l.CreatedAt)
}

// GetByID retrieves a single log row.
func (r *HabitLogRepo) GetByID(ctx context.Context, id uint64) (model.HabitLog, error) {
	l, err := scanLog(r.DB.QueryRowContext(ctx,
		"SELECT "+logColumns+" FROM habit_logs WHERE id=? LIMIT 1", id).Scan)
	if err == sql.ErrNoRows {
		return l, ErrNotFound
	}
	return l, err
}

// OwnerOf resolves the user owning the habit a log belongs to.
// Handlers use it to enforce that members only touch their own logs.
func (r *HabitLogRepo) OwnerOf(ctx context.Context, logID uint64) (uint64, error) {
	var userID uint64
	err := r.DB.QueryRowContext(ctx,
		`SELECT h.user_id FROM habit_logs l JOIN habits h ON h.id = l.habit_id WHERE l.id=? LIMIT 1`,
		logID).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return userID, err
}

// Update overwrites status and value of an existing log.
func (r *HabitLogRepo) Update(ctx context.Context, id uint64, status model.LogStatus, value *float64) (model.HabitLog, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE habit_logs SET status=?, value=? WHERE id=?", status, value, id)
	if err != nil {
		return model.HabitLog{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// the row may still exist with identical values; confirm before 404ing
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return model.HabitLog{}, getErr
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a log row.
func (r *HabitLogRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM habit_logs WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByHabit returns a habit's history, newest first, with paging.
func (r *HabitLogRepo) ListByHabit(ctx context.Context, habitID uint64, offset, limit int) ([]model.HabitLog, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+logColumns+" FROM habit_logs WHERE habit_id=? ORDER BY record_date DESC LIMIT ? OFFSET ?",
		habitID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLogs(rows)
}

// ListAllByHabit returns the complete log history of one habit.
// Streak computation needs every row, not a page.
func (r *HabitLogRepo) ListAllByHabit(ctx context.Context, habitID uint64) ([]model.HabitLog, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+logColumns+" FROM habit_logs WHERE habit_id=? ORDER BY record_date DESC", habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLogs(rows)
}

// ListByUserBetween returns all logs of the user's habits whose
// record_date falls in [from, to].  The join eager-loads ownership so
// the stats engine receives fully-materialized snapshots.
func (r *HabitLogRepo) ListByUserBetween(ctx context.Context, userID uint64, from, to time.Time) ([]model.HabitLog, error) {
	const q = `SELECT l.id, l.habit_id, l.record_date, l.status, l.value, l.created_at
	           FROM habit_logs l
	           JOIN habits h ON h.id = l.habit_id
	           WHERE h.user_id=? AND l.record_date BETWEEN ? AND ?
	           ORDER BY l.record_date`
	rows, err := r.DB.QueryContext(ctx, q, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLogs(rows)
}

// ListByUser returns the user's logs joined with habit names,
// newest first, with paging.
func (r *HabitLogRepo) ListByUser(ctx context.Context, userID uint64, offset, limit int) ([]UserLog, error) {
	const q = `SELECT l.id, l.habit_id, l.record_date, l.status, l.value, l.created_at, h.name
	           FROM habit_logs l
	           JOIN habits h ON h.id = l.habit_id
	           WHERE h.user_id=?
	           ORDER BY l.record_date DESC
	           LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, q, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UserLog
	for rows.Next() {
		var ul UserLog
		if err := rows.Scan(&ul.ID, &ul.HabitID, &ul.RecordDate, &ul.Status, &ul.Value, &ul.CreatedAt, &ul.HabitName); err != nil {
			return nil, err
		}
		out = append(out, ul)
	}
	return out, rows.Err()
}

// ListAll returns every log in the system joined with habit and
// owner names.  Admin console only.
func (r *HabitLogRepo) ListAll(ctx context.Context, offset, limit int) ([]AdminLog, error) {
	const q = `SELECT l.id, l.habit_id, l.record_date, l.status, l.value, l.created_at, h.name, u.full_name
	           FROM habit_logs l
	           JOIN habits h ON h.id = l.habit_id
	           JOIN users u ON u.id = h.user_id
	           ORDER BY l.record_date DESC
	           LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AdminLog
	for rows.Next() {
		var al AdminLog
		if err := rows.Scan(&al.ID, &al.HabitID, &al.RecordDate, &al.Status, &al.Value, &al.CreatedAt, &al.HabitName, &al.UserFullName); err != nil {
			return nil, err
		}
		out = append(out, al)
	}
	return out, rows.Err()
}

// CreateMissing inserts the given synthesized logs inside one
// transaction, re-checking existence per habit/date pair so that a
// concurrent auto-fail run cannot double-create.  It returns the
// number of rows actually written.
func (r *HabitLogRepo) CreateMissing(ctx context.Context, logs []model.HabitLog) (int, error) {
	if len(logs) == 0 {
		return 0, nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	created := 0
	for _, l := range logs {
		var existingID uint64
		err := tx.QueryRowContext(ctx,
			"SELECT id FROM habit_logs WHERE habit_id=? AND record_date=? LIMIT 1",
			l.HabitID, l.RecordDate).Scan(&existingID)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO habit_logs (habit_id, record_date, status, value) VALUES (?,?,?,?)",
			l.HabitID, l.RecordDate, l.Status, l.Value); err != nil {
			return 0, err
		}
		created++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return created, nil
}

func collectLogs(rows *sql.Rows) ([]model.HabitLog, error) {
	var logs []model.HabitLog
	for rows.Next() {
		l, err := scanLog(rows.Scan)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
