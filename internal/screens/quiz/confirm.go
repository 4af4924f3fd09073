package quiz

import (
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/repaso/internal/ui/theme"
)

// ConfirmModel is a yes/no prompt. Any key but y is a no.
type ConfirmModel struct {
	Question string
	Answered bool
	Yes      bool
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Answered {
		return m, nil
	}
	m.Answered = true
	switch kmsg.String() {
	case "y", "Y":
		m.Yes = true
	}
	return m, tea.Quit
}

func (m ConfirmModel) View() tea.View {
	if m.Answered {
		return tea.NewView("")
	}
	return tea.NewView(m.Question + theme.Hint.Render(" [y/N] ") + "\n")
}

// Confirm asks question on in and out.
func Confirm(question string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(ConfirmModel{Question: question}, tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	return final.(ConfirmModel).Yes, nil
}
