package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/habit-tracker/internal/model"
)

// CategoryRepo manages persistence for habit categories.
type CategoryRepo struct{ DB *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

// Create inserts a category and assigns the generated ID back.
// Duplicate names surface as ErrConflict.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO habit_categories (name, description) VALUES (?,?)", c.Name, c.Description)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByID retrieves a category by id.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (model.Category, error) {
	var c model.Category
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, description FROM habit_categories WHERE id=? LIMIT 1",
		id).Scan(&c.ID, &c.Name, &c.Description)
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

// List returns all categories ordered by name.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, description FROM habit_categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Update overwrites a category's name and description.
func (r *CategoryRepo) Update(ctx context.Context, c *model.Category) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE habit_categories SET name=?, description=? WHERE id=?",
		c.Name, c.Description, c.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, c.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a category.  Categories still referenced by habits
// cannot be deleted; the FK violation is reported as ErrConflict.
func (r *CategoryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM habit_categories WHERE id=?", id)
	if err != nil {
		// MySQL 1451: cannot delete parent row, foreign key constraint
		if strings.Contains(strings.ToLower(err.Error()), "1451") {
			return ErrConflict
		}
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
