package domain

// Credit bounds for a whole degree program.
const (
	MinDegreeCredits = 60
	MaxDegreeCredits = 200
)

// Degree is the program a plan works toward. There is at most one per plan;
// edits replace it wholesale.
type Degree struct {
	Name                 string
	TotalCreditsRequired float64
}

// Validate checks degree fields and returns field-keyed messages.
func (d *Degree) Validate() error {
	v := NewValidationError()
	if d.Name == "" {
		v.Add("name", "degree name is required")
	}
	if d.TotalCreditsRequired < MinDegreeCredits || d.TotalCreditsRequired > MaxDegreeCredits {
		v.Addf("total_credits_required", "must be between %d and %d", MinDegreeCredits, MaxDegreeCredits)
	}
	return v.OrNil()
}
