package portfile

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/tasselapp/tassel/internal/domain"
)

// Export serializes a plan into an indented JSON document carrying the
// format marker. Credits and grades survive the round trip losslessly.
func Export(p *domain.Plan) ([]byte, error) {
	doc := FromPlan(p)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding plan document: %w", err)
	}
	return data, nil
}

// Import parses, validates, and converts a document. The returned plan is a
// complete replacement for the current one; on any error the caller's state
// is to remain untouched.
func Import(data []byte) (*domain.Plan, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if errs := ValidateDocument(doc); len(errs) > 0 {
		return nil, FormatErrors(errs)
	}
	return ToPlan(doc), nil
}

// FromPlan builds the document form of a plan.
func FromPlan(p *domain.Plan) *Document {
	doc := &Document{
		Format:    FormatName,
		Version:   FormatVersion,
		Semesters: make([]SemesterDoc, 0, len(p.Semesters)),
	}
	if p.Degree != nil {
		doc.Degree = &DegreeDoc{
			Name:                 p.Degree.Name,
			TotalCreditsRequired: p.Degree.TotalCreditsRequired,
		}
	}
	for _, sem := range p.Semesters {
		sd := SemesterDoc{
			ID:       sem.ID,
			Name:     sem.Name,
			Year:     sem.Year,
			Season:   string(sem.Season),
			IsActive: sem.IsActive,
			Courses:  make([]CourseDoc, 0, len(sem.Courses)),
		}
		for _, c := range sem.Courses {
			cd := CourseDoc{
				ID:        c.ID,
				Name:      c.Name,
				Credits:   c.Credits,
				StartTime: c.StartTime,
				EndTime:   c.EndTime,
				Location:  c.Location,
				Color:     c.Color,
			}
			if c.Grade != nil {
				g := *c.Grade
				cd.Grade = &g
			}
			for _, d := range c.DaysOfWeek {
				cd.DaysOfWeek = append(cd.DaysOfWeek, string(d))
			}
			sd.Courses = append(sd.Courses, cd)
		}
		doc.Semesters = append(doc.Semesters, sd)
	}
	if len(p.Notes) > 0 {
		doc.Notes = make(map[string]string, len(p.Notes))
		for k, v := range p.Notes {
			doc.Notes[k] = v
		}
	}
	return doc
}

// ToPlan converts a validated document into a domain plan. Entities missing
// IDs (hand-written documents) get fresh ones.
func ToPlan(doc *Document) *domain.Plan {
	p := domain.NewPlan()
	if doc.Degree != nil {
		p.Degree = &domain.Degree{
			Name:                 doc.Degree.Name,
			TotalCreditsRequired: doc.Degree.TotalCreditsRequired,
		}
	}
	for _, sd := range doc.Semesters {
		sem := &domain.Semester{
			ID:       sd.ID,
			Name:     sd.Name,
			Year:     sd.Year,
			Season:   domain.Season(sd.Season),
			IsActive: sd.IsActive,
			Courses:  []*domain.Course{},
		}
		if sem.ID == "" {
			sem.ID = uuid.New().String()
		}
		for _, cd := range sd.Courses {
			c := &domain.Course{
				ID:        cd.ID,
				Name:      cd.Name,
				Credits:   cd.Credits,
				StartTime: cd.StartTime,
				EndTime:   cd.EndTime,
				Location:  cd.Location,
				Color:     cd.Color,
			}
			if c.ID == "" {
				c.ID = uuid.New().String()
			}
			if cd.Grade != nil {
				g := *cd.Grade
				c.Grade = &g
			}
			for _, d := range cd.DaysOfWeek {
				c.DaysOfWeek = append(c.DaysOfWeek, domain.Weekday(d))
			}
			sem.Courses = append(sem.Courses, c)
		}
		p.Semesters = append(p.Semesters, sem)
	}
	for k, v := range doc.Notes {
		p.Notes[k] = v
	}
	return p
}
