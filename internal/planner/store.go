// Package planner owns the in-memory planning aggregate: degree, semesters,
// courses, and notes, plus linear undo/redo over whole-plan snapshots.
// A Store is an explicit, constructible container — callers hold a handle
// and inject it where needed. All operations are synchronous and atomic:
// a mutation either fully applies or fails leaving the plan unchanged.
package planner

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tasselapp/tassel/internal/domain"
)

// defaultCourseColors is cycled through when a course is added without an
// explicit display color.
var defaultCourseColors = []string{
	"#8ec07c", "#fabd2f", "#83a598", "#d3869b", "#fe8019", "#fb4934",
}

// Store holds the single mutable plan. Safe for use from the CLI goroutine
// plus the background autosaver; a mutex guards every entry point.
type Store struct {
	mu       sync.Mutex
	plan     *domain.Plan
	hist     history
	onChange func()
}

func NewStore() *Store {
	return &Store{plan: domain.NewPlan()}
}

// SetOnChange registers a hook invoked after every successful mutation.
// Used by the autosaver to mark the plan dirty.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// notify must be called with the lock held, after a successful mutation.
func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Reset clears the plan and its history back to empty defaults. Idempotent.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = domain.NewPlan()
	s.hist.reset()
	s.notify()
}

// Snapshot returns a deep copy of the current plan.
func (s *Store) Snapshot() *domain.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Clone()
}

// Replace swaps in a whole new plan (import). The previous plan is recorded
// in history so the swap is undoable.
func (s *Store) Replace(p *domain.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hist.record(s.plan)
	s.plan = p.Clone()
	s.notify()
}

// Seed installs a plan as the new baseline: history is cleared, nothing is
// recorded. Hydrating from storage goes through here so that undo never steps
// behind what was loaded.
func (s *Store) Seed(p *domain.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hist.reset()
	s.plan = p.Clone()
	s.notify()
}

// SetDegree replaces the degree wholesale. No merge semantics.
func (s *Store) SetDegree(d domain.Degree) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hist.record(s.plan.Clone())
	s.plan.Degree = &d
	s.notify()
	return nil
}

// AddSemester appends a semester with a fresh ID and an empty course list.
// The first semester added to a plan becomes active; later ones do not.
// The passed struct receives the assigned ID.
func (s *Store) AddSemester(sem *domain.Semester) error {
	if err := sem.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if sem.ID == "" {
		sem.ID = uuid.New().String()
	}
	sem.IsActive = len(s.plan.Semesters) == 0

	s.hist.record(s.plan.Clone())
	stored := sem.Clone()
	stored.Courses = []*domain.Course{}
	s.plan.Semesters = append(s.plan.Semesters, stored)
	s.notify()
	return nil
}

// UpdateSemester replaces the name, year, and season of an existing semester.
// Courses and the active flag are untouched.
func (s *Store) UpdateSemester(sem *domain.Semester) error {
	if err := sem.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.plan.FindSemester(sem.ID)
	if existing == nil {
		return fmt.Errorf("%w: %s", ErrSemesterNotFound, sem.ID)
	}

	s.hist.record(s.plan.Clone())
	existing.Name = sem.Name
	existing.Year = sem.Year
	existing.Season = sem.Season
	s.notify()
	return nil
}

// DeleteSemester removes a semester and cascades to its courses.
func (s *Store) DeleteSemester(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, sem := range s.plan.Semesters {
		if sem.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSemesterNotFound, id)
	}

	s.hist.record(s.plan.Clone())
	s.plan.Semesters = append(s.plan.Semesters[:idx], s.plan.Semesters[idx+1:]...)
	s.notify()
	return nil
}

// SetActiveSemester marks exactly one semester active, clearing the flag on
// all others. This is the only path that moves the flag after creation.
func (s *Store) SetActiveSemester(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.plan.FindSemester(id) == nil {
		return fmt.Errorf("%w: %s", ErrSemesterNotFound, id)
	}

	s.hist.record(s.plan.Clone())
	for _, sem := range s.plan.Semesters {
		sem.IsActive = sem.ID == id
	}
	s.notify()
	return nil
}

// AddCourse appends a course to the given semester with a fresh ID. A course
// without an explicit color gets one from the default palette. The passed
// struct receives the assigned ID and color.
func (s *Store) AddCourse(semesterID string, c *domain.Course) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sem := s.plan.FindSemester(semesterID)
	if sem == nil {
		return fmt.Errorf("%w: %s", ErrSemesterNotFound, semesterID)
	}

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Color == "" {
		c.Color = defaultCourseColors[len(sem.Courses)%len(defaultCourseColors)]
	}

	s.hist.record(s.plan.Clone())
	sem.Courses = append(sem.Courses, c.Clone())
	s.notify()
	return nil
}

// UpdateCourse replaces an existing course's fields wholesale (same ID).
func (s *Store) UpdateCourse(semesterID string, c *domain.Course) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sem := s.plan.FindSemester(semesterID)
	if sem == nil {
		return fmt.Errorf("%w: %s", ErrSemesterNotFound, semesterID)
	}
	if sem.FindCourse(c.ID) == nil {
		return fmt.Errorf("%w: %s", ErrCourseNotFound, c.ID)
	}

	s.hist.record(s.plan.Clone())
	for i, existing := range sem.Courses {
		if existing.ID == c.ID {
			sem.Courses[i] = c.Clone()
			break
		}
	}
	s.notify()
	return nil
}

// DeleteCourse removes a course from its semester.
func (s *Store) DeleteCourse(semesterID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sem := s.plan.FindSemester(semesterID)
	if sem == nil {
		return fmt.Errorf("%w: %s", ErrSemesterNotFound, semesterID)
	}
	idx := -1
	for i, c := range sem.Courses {
		if c.ID == courseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}

	s.hist.record(s.plan.Clone())
	sem.Courses = append(sem.Courses[:idx], sem.Courses[idx+1:]...)
	s.notify()
	return nil
}

// AddNote stores a note under a fresh ID and returns the ID.
func (s *Store) AddNote(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.hist.record(s.plan.Clone())
	s.plan.Notes[id] = text
	s.notify()
	return id
}

// SetNote replaces the text of an existing note.
func (s *Store) SetNote(id, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plan.Notes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	s.hist.record(s.plan.Clone())
	s.plan.Notes[id] = text
	s.notify()
	return nil
}

// DeleteNote removes a note.
func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plan.Notes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	s.hist.record(s.plan.Clone())
	delete(s.plan.Notes, id)
	s.notify()
	return nil
}

// Undo steps back one mutation. Returns false (no-op) on empty history.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored, ok := s.hist.undo(s.plan)
	if !ok {
		return false
	}
	s.plan = restored
	s.notify()
	return true
}

// Redo steps forward after an undo. Returns false (no-op) when nothing to redo.
func (s *Store) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored, ok := s.hist.redo(s.plan)
	if !ok {
		return false
	}
	s.plan = restored
	s.notify()
	return true
}

func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hist.past) > 0
}

func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hist.future) > 0
}
