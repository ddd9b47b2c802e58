package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tasselapp/tassel/internal/db"
	"github.com/tasselapp/tassel/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo over a DBTX.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(dbtx db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: dbtx}
}

func (r *SQLiteCourseRepo) ListBySemester(ctx context.Context, semesterID string) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, credits, grade, days, start_time, end_time, location, color
		FROM courses WHERE semester_id = ? ORDER BY order_index`, semesterID)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		var c domain.Course
		var grade sql.NullFloat64
		var days string
		if err := rows.Scan(&c.ID, &c.Name, &c.Credits, &grade, &days,
			&c.StartTime, &c.EndTime, &c.Location, &c.Color); err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		c.Grade = floatFromNull(grade)
		c.DaysOfWeek = splitDays(days)
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Upsert(ctx context.Context, semesterID string, c *domain.Course, orderIndex int) error {
	query := `INSERT INTO courses (id, semester_id, name, credits, grade, days,
			start_time, end_time, location, color, order_index, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET semester_id = excluded.semester_id,
		    name = excluded.name,
		    credits = excluded.credits,
		    grade = excluded.grade,
		    days = excluded.days,
		    start_time = excluded.start_time,
		    end_time = excluded.end_time,
		    location = excluded.location,
		    color = excluded.color,
		    order_index = excluded.order_index,
		    updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, semesterID, c.Name, c.Credits, nullableFloat(c.Grade), joinDays(c.DaysOfWeek),
		c.StartTime, c.EndTime, c.Location, c.Color, orderIndex, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}
	return nil
}
