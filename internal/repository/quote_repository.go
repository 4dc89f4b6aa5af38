package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/habit-tracker/internal/model"
)

// QuoteRepo manages persistence for motivational quotes.
type QuoteRepo struct{ DB *sql.DB }

func NewQuoteRepo(db *sql.DB) *QuoteRepo { return &QuoteRepo{DB: db} }

// Create inserts a quote and assigns the generated ID back.
func (r *QuoteRepo) Create(ctx context.Context, q *model.Quote) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO motivational_quotes (quote, author) VALUES (?,?)", q.Quote, q.Author)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	q.ID = uint64(id)
	return nil
}

// Random returns one quote chosen by the database.  The table is
// small, so ORDER BY RAND() is acceptable here.
func (r *QuoteRepo) Random(ctx context.Context) (model.Quote, error) {
	var q model.Quote
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, quote, author FROM motivational_quotes ORDER BY RAND() LIMIT 1").
		Scan(&q.ID, &q.Quote, &q.Author)
	if err == sql.ErrNoRows {
		return q, ErrNotFound
	}
	return q, err
}

// List returns all quotes ordered by id.
func (r *QuoteRepo) List(ctx context.Context) ([]model.Quote, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, quote, author FROM motivational_quotes ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []model.Quote
	for rows.Next() {
		var q model.Quote
		if err := rows.Scan(&q.ID, &q.Quote, &q.Author); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// Update overwrites a quote's text and author.
func (r *QuoteRepo) Update(ctx context.Context, q *model.Quote) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE motivational_quotes SET quote=?, author=? WHERE id=?",
		q.Quote, q.Author, q.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can mean "missing" or "unchanged"; disambiguate.
		var exists int
		err := r.DB.QueryRowContext(ctx,
			"SELECT 1 FROM motivational_quotes WHERE id=? LIMIT 1", q.ID).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes a quote.
func (r *QuoteRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM motivational_quotes WHERE id=?", id)
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
