package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/ui/theme"
)

// MultiChoice is a selector over one bank question's options. Once
// submitted it renders the answer feedback.
type MultiChoice struct {
	Header    string
	Question  bank.Question
	Selected  int
	Chosen    string
	Submitted bool
}

// NewMultiChoice creates a new multiple-choice component for q.
func NewMultiChoice(header string, q bank.Question) MultiChoice {
	return MultiChoice{Header: header, Question: q}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor with up/down (or k/j) and submits on enter or on
// an option letter.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := strings.ToLower(kmsg.String()); k {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Question.Options)-1 {
			m.Selected++
		}
	case "enter":
		if len(m.Question.Options) > 0 {
			m = m.Submit(m.Question.Options[m.Selected].Letter)
		}
	default:
		for i, opt := range m.Question.Options {
			if opt.Letter == k {
				m.Selected = i
				m = m.Submit(k)
				break
			}
		}
	}
	return m, nil
}

// Submit records the chosen letter.
func (m MultiChoice) Submit(letter string) MultiChoice {
	m.Chosen = letter
	m.Submitted = true
	return m
}

// IsCorrect returns true if the submitted letter is the right answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Chosen == m.Question.Answer
}

// View renders the question with its options. After Submit the correct
// option is highlighted, and so is the wrong pick if there was one.
func (m MultiChoice) View() string {
	var b strings.Builder
	if m.Header != "" {
		b.WriteString(theme.Subtitle.Render(m.Header))
		b.WriteString("\n")
	}
	b.WriteString(theme.Body.Bold(true).Render(m.Question.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Question.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, opt.Letter, opt.Text)
		switch {
		case !m.Submitted && i == m.Selected:
			line = theme.Label.Render(line)
		case !m.Submitted:
			line = theme.Body.Render(line)
		case opt.Letter == m.Question.Answer:
			line = theme.Correct.Render(line)
		case opt.Letter == m.Chosen:
			line = theme.Incorrect.Render(line)
		default:
			line = theme.Subtitle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}
