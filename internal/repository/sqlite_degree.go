package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tasselapp/tassel/internal/db"
	"github.com/tasselapp/tassel/internal/domain"
)

// SQLiteDegreeRepo implements DegreeRepo over a DBTX, so the same code runs
// against the database directly or inside a save transaction.
type SQLiteDegreeRepo struct {
	db db.DBTX
}

// NewSQLiteDegreeRepo creates a new SQLiteDegreeRepo.
func NewSQLiteDegreeRepo(dbtx db.DBTX) *SQLiteDegreeRepo {
	return &SQLiteDegreeRepo{db: dbtx}
}

func (r *SQLiteDegreeRepo) Get(ctx context.Context) (*domain.Degree, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT name, total_credits_required FROM degrees WHERE id = 'default'`)

	var d domain.Degree
	if err := row.Scan(&d.Name, &d.TotalCreditsRequired); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning degree: %w", err)
	}
	return &d, nil
}

func (r *SQLiteDegreeRepo) Upsert(ctx context.Context, d *domain.Degree) error {
	query := `INSERT INTO degrees (id, name, total_credits_required, updated_at)
		VALUES ('default', ?, ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET name = excluded.name,
		    total_credits_required = excluded.total_credits_required,
		    updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, d.Name, d.TotalCreditsRequired, nowUTC()); err != nil {
		return fmt.Errorf("upserting degree: %w", err)
	}
	return nil
}

func (r *SQLiteDegreeRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM degrees WHERE id = 'default'`); err != nil {
		return fmt.Errorf("deleting degree: %w", err)
	}
	return nil
}
