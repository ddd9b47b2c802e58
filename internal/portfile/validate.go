package portfile

import (
	"fmt"

	"github.com/tasselapp/tassel/internal/domain"
)

// ValidateDocument checks a parsed document's shape before any conversion.
// Returns every validation error found, not just the first.
func ValidateDocument(doc *Document) []error {
	var errs []error

	if doc.Format != FormatName {
		errs = append(errs, fmt.Errorf("format: expected %q, got %q", FormatName, doc.Format))
	}
	if doc.Version != FormatVersion {
		errs = append(errs, fmt.Errorf("version: unsupported version %d (expected %d)", doc.Version, FormatVersion))
	}

	if doc.Degree != nil {
		if doc.Degree.Name == "" {
			errs = append(errs, fmt.Errorf("degree.name is required"))
		}
		if doc.Degree.TotalCreditsRequired < domain.MinDegreeCredits || doc.Degree.TotalCreditsRequired > domain.MaxDegreeCredits {
			errs = append(errs, fmt.Errorf("degree.total_credits_required: %v out of range [%d, %d]",
				doc.Degree.TotalCreditsRequired, domain.MinDegreeCredits, domain.MaxDegreeCredits))
		}
	}

	activeCount := 0
	for i, sem := range doc.Semesters {
		prefix := fmt.Sprintf("semesters[%d]", i)

		if sem.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !domain.ValidSeasons[sem.Season] {
			errs = append(errs, fmt.Errorf("%s.season: invalid value %q", prefix, sem.Season))
		}
		if sem.IsActive {
			activeCount++
		}

		for j, c := range sem.Courses {
			cprefix := fmt.Sprintf("%s.courses[%d]", prefix, j)
			if c.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", cprefix))
			}
			if c.Credits < domain.MinCourseCredits || c.Credits > domain.MaxCourseCredits {
				errs = append(errs, fmt.Errorf("%s.credits: %v out of range [%d, %d]",
					cprefix, c.Credits, domain.MinCourseCredits, domain.MaxCourseCredits))
			}
			for _, d := range c.DaysOfWeek {
				if !domain.ValidWeekdays[d] {
					errs = append(errs, fmt.Errorf("%s.days_of_week: unknown weekday %q", cprefix, d))
				}
			}
		}
	}

	if activeCount > 1 {
		errs = append(errs, fmt.Errorf("semesters: %d marked active, at most one allowed", activeCount))
	}

	return errs
}

// FormatErrors folds validation errors into one human-readable message.
func FormatErrors(errs []error) error {
	msg := fmt.Sprintf("plan import failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
