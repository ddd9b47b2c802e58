package repository

import (
	"context"
	"fmt"

	"github.com/tasselapp/tassel/internal/db"
	"github.com/tasselapp/tassel/internal/domain"
)

// SQLiteSemesterRepo implements SemesterRepo over a DBTX.
type SQLiteSemesterRepo struct {
	db db.DBTX
}

// NewSQLiteSemesterRepo creates a new SQLiteSemesterRepo.
func NewSQLiteSemesterRepo(dbtx db.DBTX) *SQLiteSemesterRepo {
	return &SQLiteSemesterRepo{db: dbtx}
}

func (r *SQLiteSemesterRepo) List(ctx context.Context) ([]*domain.Semester, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, year, season, is_active FROM semesters ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("listing semesters: %w", err)
	}
	defer rows.Close()

	var semesters []*domain.Semester
	for rows.Next() {
		var s domain.Semester
		var season string
		var active int
		if err := rows.Scan(&s.ID, &s.Name, &s.Year, &season, &active); err != nil {
			return nil, fmt.Errorf("scanning semester row: %w", err)
		}
		s.Season = domain.Season(season)
		s.IsActive = active != 0
		s.Courses = []*domain.Course{}
		semesters = append(semesters, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating semesters: %w", err)
	}
	return semesters, nil
}

func (r *SQLiteSemesterRepo) Upsert(ctx context.Context, s *domain.Semester, orderIndex int) error {
	query := `INSERT INTO semesters (id, name, year, season, is_active, order_index, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET name = excluded.name,
		    year = excluded.year,
		    season = excluded.season,
		    is_active = excluded.is_active,
		    order_index = excluded.order_index,
		    updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Year, string(s.Season), boolToInt(s.IsActive), orderIndex, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting semester: %w", err)
	}
	return nil
}

func (r *SQLiteSemesterRepo) Delete(ctx context.Context, id string) error {
	// Courses cascade via the foreign key.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM semesters WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting semester: %w", err)
	}
	return nil
}

func (r *SQLiteSemesterRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM semesters`); err != nil {
		return fmt.Errorf("clearing semesters: %w", err)
	}
	return nil
}
