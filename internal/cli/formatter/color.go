package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tasselapp/tassel/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeasonBadge returns a colored season label.
func SeasonBadge(season domain.Season) string {
	switch season {
	case domain.SeasonAutumn:
		return StyleHeader.Render("Autumn")
	case domain.SeasonSpring:
		return StyleGreen.Render("Spring")
	case domain.SeasonSummer:
		return StyleYellow.Render("Summer")
	default:
		return StyleDim.Render(string(season))
	}
}

// ActiveMarker renders the current-semester indicator.
func ActiveMarker(active bool) string {
	if active {
		return StyleGreen.Render("● active")
	}
	return StyleDim.Render("○")
}

// CourseSwatch renders a colored dot in the course's display color.
func CourseSwatch(hex string) string {
	if hex == "" {
		return StyleDim.Render("●")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}

// GradeStyled colors a grade by how it sits on the scale.
func GradeStyled(grade, scaleMax float64) string {
	text := FormatNumber(grade)
	if scaleMax <= 0 {
		return StyleFg.Render(text)
	}
	switch frac := grade / scaleMax; {
	case frac >= 0.85:
		return StyleGreen.Render(text)
	case frac >= 0.6:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
