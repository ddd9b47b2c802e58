package domain

// Plan is the aggregate a planner store owns: the degree, the ordered
// semesters with their courses, and free-form notes. Undo/redo snapshots
// and import/export both operate on whole Plan values.
type Plan struct {
	Degree    *Degree
	Semesters []*Semester
	Notes     map[string]string
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{Notes: make(map[string]string)}
}

// FindSemester returns the semester with the given ID, or nil.
func (p *Plan) FindSemester(id string) *Semester {
	for _, s := range p.Semesters {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// ActiveSemester returns the semester currently marked active, or nil.
func (p *Plan) ActiveSemester() *Semester {
	for _, s := range p.Semesters {
		if s.IsActive {
			return s
		}
	}
	return nil
}

// AllCourses returns every course across all semesters in plan order.
func (p *Plan) AllCourses() []*Course {
	var out []*Course
	for _, s := range p.Semesters {
		out = append(out, s.Courses...)
	}
	return out
}

// Clone returns a deep, independent copy of the plan. Mutating the copy
// must never be observable through the original; history snapshots rely
// on this.
func (p *Plan) Clone() *Plan {
	cp := NewPlan()
	if p.Degree != nil {
		d := *p.Degree
		cp.Degree = &d
	}
	cp.Semesters = make([]*Semester, len(p.Semesters))
	for i, s := range p.Semesters {
		cp.Semesters[i] = s.Clone()
	}
	for k, v := range p.Notes {
		cp.Notes[k] = v
	}
	return cp
}
