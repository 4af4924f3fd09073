package cmd

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/repaso/internal/review"
	"github.com/abhisek/repaso/internal/ui/theme"
)

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

var statusStyles = map[review.Status]lipgloss.Style{
	review.StatusNew:      theme.StatusNew,
	review.StatusDue:      theme.StatusDue,
	review.StatusWeak:     theme.StatusWeak,
	review.StatusLearning: theme.StatusLearning,
	review.StatusMastered: theme.StatusMastered,
}

func statusStyle(s review.Status) lipgloss.Style {
	if st, ok := statusStyles[s]; ok {
		return st
	}
	return theme.Body
}
