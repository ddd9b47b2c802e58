package planner

import "errors"

// Reference errors: operating on an id that does not resolve is a reported
// no-op, never a fatal fault. Callers check with errors.Is.
var (
	ErrSemesterNotFound = errors.New("semester not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrNoteNotFound     = errors.New("note not found")
)
