package repository

import (
	"context"
	"fmt"

	"github.com/tasselapp/tassel/internal/db"
)

// SQLiteNoteRepo implements NoteRepo over a DBTX.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(dbtx db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: dbtx}
}

func (r *SQLiteNoteRepo) Map(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, body FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	notes := make(map[string]string)
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		notes[id] = body
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

func (r *SQLiteNoteRepo) Upsert(ctx context.Context, id, body string) error {
	query := `INSERT INTO notes (id, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET body = excluded.body, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, id, body, nowUTC()); err != nil {
		return fmt.Errorf("upserting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}
	return nil
}
