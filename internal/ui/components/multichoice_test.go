package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/repaso/internal/bank/banktest"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMultiChoice(t *testing.T) {
	q := banktest.Question(1, 1)
	m := NewMultiChoice("1/10", q)
	if m.IsCorrect() {
		t.Error("unsubmitted choice reported correct")
	}

	v := m.View()
	for _, want := range []string{"1/10", q.Prompt, "a)", "d)"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}

	if !m.Submit("a").IsCorrect() {
		t.Error("right answer not accepted")
	}
	if m.Submit("c").IsCorrect() {
		t.Error("wrong answer accepted")
	}
}

func TestMultiChoice_Navigate(t *testing.T) {
	m := NewMultiChoice("", banktest.Question(1, 1))

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 0 {
		t.Errorf("Selected = %d after up at top, want 0", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	m, _ = m.Update(keyPress('j'))
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	for range 5 {
		m, _ = m.Update(specialKey(tea.KeyDown))
	}
	if m.Selected != 3 {
		t.Errorf("Selected = %d after running off the end, want 3", m.Selected)
	}
	m, _ = m.Update(keyPress('k'))

	m, _ = m.Update(specialKey(tea.KeyEnter))
	if !m.Submitted || m.Chosen != "c" {
		t.Fatalf("enter submitted %q (submitted=%v), want c", m.Chosen, m.Submitted)
	}

	m, _ = m.Update(keyPress('a'))
	if m.Chosen != "c" {
		t.Error("keys after submit must be ignored")
	}
}

func TestMultiChoice_LetterSubmits(t *testing.T) {
	m := NewMultiChoice("", banktest.Question(2, 1))

	m, _ = m.Update(keyPress('c'))
	if m.Submitted {
		t.Error("letter outside the options submitted")
	}
	m, _ = m.Update(keyPress('B'))
	if !m.Submitted || m.Chosen != "b" || m.Selected != 1 {
		t.Errorf("got chosen=%q selected=%d submitted=%v, want b/1/true", m.Chosen, m.Selected, m.Submitted)
	}
}
