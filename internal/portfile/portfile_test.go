package portfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasselapp/tassel/internal/domain"
)

func gradePtr(g float64) *float64 { return &g }

func samplePlan() *domain.Plan {
	p := domain.NewPlan()
	p.Degree = &domain.Degree{Name: "BSc Computer Science", TotalCreditsRequired: 180}
	p.Semesters = []*domain.Semester{
		{
			ID: "s1", Name: "First autumn", Year: 2025, Season: domain.SeasonAutumn, IsActive: true,
			Courses: []*domain.Course{
				{
					ID: "c1", Name: "Mathematics I", Credits: 5.5, Grade: gradePtr(4),
					DaysOfWeek: []domain.Weekday{domain.Monday, domain.Wednesday},
					StartTime:  "10:00", EndTime: "12:00", Location: "Hall A", Color: "#8ec07c",
				},
				{ID: "c2", Name: "Seminar", Credits: 1.5},
			},
		},
		{ID: "s2", Name: "First spring", Year: 2026, Season: domain.SeasonSpring, Courses: []*domain.Course{}},
	}
	p.Notes["n1"] = "apply for exchange"
	return p
}

func TestExportImport_RoundTrip(t *testing.T) {
	p := samplePlan()
	data, err := Export(p)
	require.NoError(t, err)

	restored, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, p, restored)
}

func TestExport_CarriesFormatMarker(t *testing.T) {
	data, err := Export(domain.NewPlan())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format": "tassel-plan"`)
	assert.Contains(t, string(data), `"version": 1`)
}

func TestImport_RejectsMalformedJSON(t *testing.T) {
	_, err := Import([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing plan document")
}

func TestImport_RejectsWrongFormat(t *testing.T) {
	_, err := Import([]byte(`{"format": "somebody-elses", "version": 1, "semesters": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected \"tassel-plan\"")
}

func TestImport_RejectsUnsupportedVersion(t *testing.T) {
	_, err := Import([]byte(`{"format": "tassel-plan", "version": 99, "semesters": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestImport_CollectsAllShapeErrors(t *testing.T) {
	doc := []byte(`{
		"format": "tassel-plan",
		"version": 1,
		"degree": {"name": "", "total_credits_required": 20},
		"semesters": [
			{"name": "", "year": 2025, "season": "winter", "courses": [
				{"name": "", "credits": 9, "days_of_week": ["mondy"]}
			]}
		]
	}`)
	_, err := Import(doc)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "degree.name is required")
	assert.Contains(t, msg, "total_credits_required")
	assert.Contains(t, msg, "semesters[0].name is required")
	assert.Contains(t, msg, "season: invalid value \"winter\"")
	assert.Contains(t, msg, "courses[0].credits")
	assert.Contains(t, msg, "unknown weekday \"mondy\"")
}

func TestImport_RejectsMultipleActiveSemesters(t *testing.T) {
	doc := []byte(`{
		"format": "tassel-plan",
		"version": 1,
		"semesters": [
			{"name": "A", "year": 2025, "season": "autumn", "is_active": true, "courses": []},
			{"name": "B", "year": 2026, "season": "spring", "is_active": true, "courses": []}
		]
	}`)
	_, err := Import(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most one allowed")
}

func TestImport_AssignsMissingIDs(t *testing.T) {
	doc := []byte(`{
		"format": "tassel-plan",
		"version": 1,
		"semesters": [
			{"name": "Autumn", "year": 2025, "season": "autumn", "courses": [
				{"name": "Math", "credits": 5}
			]}
		]
	}`)
	p, err := Import(doc)
	require.NoError(t, err)
	require.Len(t, p.Semesters, 1)
	assert.NotEmpty(t, p.Semesters[0].ID)
	require.Len(t, p.Semesters[0].Courses, 1)
	assert.NotEmpty(t, p.Semesters[0].Courses[0].ID)
}

func TestRoundTrip_PreservesFractionalCredits(t *testing.T) {
	p := domain.NewPlan()
	p.Semesters = []*domain.Semester{{
		ID: "s1", Name: "Autumn", Year: 2025, Season: domain.SeasonAutumn,
		Courses: []*domain.Course{{ID: "c1", Name: "Lab", Credits: 1.5, Grade: gradePtr(3.3)}},
	}}

	data, err := Export(p)
	require.NoError(t, err)
	restored, err := Import(data)
	require.NoError(t, err)

	assert.Equal(t, 1.5, restored.Semesters[0].Courses[0].Credits)
	assert.Equal(t, 3.3, *restored.Semesters[0].Courses[0].Grade)
}
