package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/repaso/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a ratio in [0, 1].
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Cells returns how many of width cells are filled.
func (p ProgressBar) Cells() (filled, width int) {
	width = max(p.Width, 4)
	filled = int(float64(width) * p.Percent)
	return min(max(filled, 0), width), width
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(theme.Label.Render(p.Label))
		b.WriteString("  ")
	}

	filled, width := p.Cells()
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat("█", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat("░", width-filled)))

	if p.ShowPercent {
		pct := min(max(int(p.Percent*100), 0), 100)
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %d%%", pct)))
	}
	return b.String()
}
