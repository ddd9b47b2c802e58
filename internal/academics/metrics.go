// Package academics computes credit and GPA metrics over a plan. Grades are
// numeric grade points already mapped by the caller; no letter-grade scale
// lives here. All functions are pure and recomputed per call.
package academics

import "github.com/tasselapp/tassel/internal/domain"

// CompletedCredits sums credits over graded courses across all semesters.
// Ungraded courses contribute nothing.
func CompletedCredits(p *domain.Plan) float64 {
	var total float64
	for _, c := range p.AllCourses() {
		if c.IsGraded() {
			total += c.Credits
		}
	}
	return total
}

// GPA returns the credit-weighted grade average over the given courses,
// considering only graded ones. Returns 0 when no graded credits exist.
func GPA(courses []*domain.Course) float64 {
	var points, credits float64
	for _, c := range courses {
		if !c.IsGraded() {
			continue
		}
		points += c.Credits * *c.Grade
		credits += c.Credits
	}
	if credits == 0 {
		return 0
	}
	return points / credits
}

// SemesterGPA is the credit-weighted average over one semester's graded
// courses.
func SemesterGPA(s *domain.Semester) float64 {
	return GPA(s.Courses)
}

// CumulativeGPA is the credit-weighted average over every semester's graded
// courses combined. Credit-weighted, not semester-weighted: a 5-credit course
// moves the average more than a 1-credit one regardless of term.
func CumulativeGPA(p *domain.Plan) float64 {
	return GPA(p.AllCourses())
}

// Progress returns completed credits as a fraction of the degree requirement.
// May exceed 1 when the student overshoots; display code clamps. Returns 0
// when no degree is set.
func Progress(p *domain.Plan) float64 {
	if p.Degree == nil || p.Degree.TotalCreditsRequired == 0 {
		return 0
	}
	return CompletedCredits(p) / p.Degree.TotalCreditsRequired
}
