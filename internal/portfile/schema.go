// Package portfile serializes a whole plan to a portable, self-describing
// JSON document and validates/restores it on import. Import is all-or-nothing:
// a document that fails shape validation never partially applies.
package portfile

import (
	"encoding/json"
	"fmt"
	"os"
)

// FormatName and FormatVersion mark exported documents so imports can reject
// files that were never a plan export.
const (
	FormatName    = "tassel-plan"
	FormatVersion = 1
)

// Document is the top-level JSON structure of a plan export.
type Document struct {
	Format    string            `json:"format"`
	Version   int               `json:"version"`
	Degree    *DegreeDoc        `json:"degree,omitempty"`
	Semesters []SemesterDoc     `json:"semesters"`
	Notes     map[string]string `json:"notes,omitempty"`
}

// DegreeDoc is the degree section of an export.
type DegreeDoc struct {
	Name                 string  `json:"name"`
	TotalCreditsRequired float64 `json:"total_credits_required"`
}

// SemesterDoc is one semester with its nested courses.
type SemesterDoc struct {
	ID       string      `json:"id,omitempty"`
	Name     string      `json:"name"`
	Year     int         `json:"year"`
	Season   string      `json:"season"`
	IsActive bool        `json:"is_active,omitempty"`
	Courses  []CourseDoc `json:"courses"`
}

// CourseDoc is one course inside a semester.
type CourseDoc struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Credits    float64  `json:"credits"`
	Grade      *float64 `json:"grade,omitempty"`
	DaysOfWeek []string `json:"days_of_week,omitempty"`
	StartTime  string   `json:"start_time,omitempty"`
	EndTime    string   `json:"end_time,omitempty"`
	Location   string   `json:"location,omitempty"`
	Color      string   `json:"color,omitempty"`
}

// Parse decodes a plan document from JSON bytes.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing plan document: %w", err)
	}
	return &doc, nil
}

// Load reads and parses a plan document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
