package repository

import (
	"context"

	"github.com/tasselapp/tassel/internal/domain"
)

// The repositories are the persistence seam the planner syncs through:
// read-all, upsert, and delete per entity. The in-memory plan stays
// authoritative; storage is a mirror written wholesale on save.

type DegreeRepo interface {
	// Get returns the stored degree, or nil when none has been saved.
	Get(ctx context.Context) (*domain.Degree, error)
	Upsert(ctx context.Context, d *domain.Degree) error
	Delete(ctx context.Context) error
}

type SemesterRepo interface {
	// List returns semesters in saved plan order, without courses.
	List(ctx context.Context) ([]*domain.Semester, error)
	Upsert(ctx context.Context, s *domain.Semester, orderIndex int) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type CourseRepo interface {
	ListBySemester(ctx context.Context, semesterID string) ([]*domain.Course, error)
	Upsert(ctx context.Context, semesterID string, c *domain.Course, orderIndex int) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type NoteRepo interface {
	Map(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, id, body string) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
