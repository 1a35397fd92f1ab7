package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"finmentor/internal/ui/theme"
)

// ProgressBar is a horizontal completion bar with a trailing percent figure.
type ProgressBar struct {
	Percent float64
	Width   int
}

// NewProgressBar creates a bar of the given total width; percent is clamped
// to [0, 1] when rendering.
func NewProgressBar(percent float64, width int) ProgressBar {
	return ProgressBar{Percent: percent, Width: width}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	barWidth := p.Width - 6 // room for "  100%"
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	percentStr := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))

	return filledStr + emptyStr + percentStr
}
