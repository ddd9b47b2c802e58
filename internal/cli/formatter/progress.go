package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored by completion: green >66%, yellow 33-66%, red <33%.
// Degree progress can exceed 100% when extra credits were earned; the bar
// caps at full but the percentage keeps the real value.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if width < 2 {
		width = 2
	}

	barPct := pct
	if barPct > 1 {
		barPct = 1
	}
	filled := int(barPct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if barPct < 0.33 {
		style = StyleRed
	} else if barPct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
