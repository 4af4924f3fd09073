// Package quiz is the interactive question loop shared by practice, study
// and exam runs.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/repaso/internal/app"
	"github.com/abhisek/repaso/internal/spacedrep"
	"github.com/abhisek/repaso/internal/ui/components"
	"github.com/abhisek/repaso/internal/ui/theme"
)

// Ending tells how a run stopped.
type Ending int

const (
	// EndFinished means the source ran out of questions.
	EndFinished Ending = iota
	// EndQuit means the learner stopped the run.
	EndQuit
	// EndTimeUp means the deadline passed.
	EndTimeUp
)

type state int

const (
	stateAsking state = iota
	stateFeedback
	stateDone
)

type tickMsg time.Time

type keyMap struct {
	Move  key.Binding
	Pick  key.Binding
	Guess key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Move:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "move")),
		Pick:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("a-d/enter", "answer")),
		Guess: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "mark as guess")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "stop")),
	}
}

// Option configures a Model.
type Option func(*Model)

// WithReveal shows the right answer after every question.
func WithReveal(reveal bool) Option {
	return func(m *Model) { m.reveal = reveal }
}

// WithClock replaces time.Now for deadline checks.
func WithClock(clock func() time.Time) Option {
	return func(m *Model) { m.clock = clock }
}

// Model asks the questions of a Source one at a time.
type Model struct {
	ctx    context.Context
	src    Source
	reveal bool
	clock  func() time.Time
	keys   keyMap
	help   help.Model

	state   state
	choice  components.MultiChoice
	guessed bool
	result  app.AnswerResult
	ending  Ending
	err     error
}

// New builds a model positioned on the source's current question.
func New(ctx context.Context, src Source, opts ...Option) Model {
	m := Model{
		ctx:   ctx,
		src:   src,
		clock: time.Now,
		keys:  defaultKeys(),
		help:  help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m, _ = m.load()
	return m
}

// Ending reports how the run stopped. It is only meaningful once Done.
func (m Model) Ending() Ending { return m.ending }

// Done reports whether the run is over.
func (m Model) Done() bool { return m.state == stateDone }

// Err returns the error that ended the run, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	if m.state == stateDone {
		return tea.Quit
	}
	if _, timed := m.src.Deadline(); timed {
		return tickCmd()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateDone {
		return m, nil
	}

	switch msg := msg.(type) {
	case tickMsg:
		if m.expired() {
			return m.finish(EndTimeUp)
		}
		return m, tickCmd()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m.finish(EndQuit)
		}
		if m.state == stateFeedback {
			return m.advance()
		}
		if key.Matches(msg, m.keys.Guess) {
			m.guessed = !m.guessed
			return m, nil
		}
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			return m.submit()
		}
		return m, cmd
	}
	return m, nil
}

// submit scores the chosen option. An answer that arrives after the
// deadline is dropped.
func (m Model) submit() (Model, tea.Cmd) {
	if m.expired() {
		return m.finish(EndTimeUp)
	}
	confidence := spacedrep.OutcomeKnew
	if m.guessed {
		confidence = spacedrep.OutcomeGuessed
	}
	res, err := m.src.Answer(m.ctx, m.choice.Question, m.choice.Chosen, confidence)
	if errors.Is(err, app.ErrSessionExpired) {
		return m.finish(EndTimeUp)
	}
	if err != nil {
		m.err = err
		return m.finish(EndQuit)
	}
	m.result = res
	if m.reveal {
		m.state = stateFeedback
		return m, nil
	}
	return m.advance()
}

func (m Model) advance() (Model, tea.Cmd) {
	if err := m.src.Advance(); err != nil {
		m.err = err
		return m.finish(EndQuit)
	}
	return m.load()
}

// load shows the source's current question or ends the run.
func (m Model) load() (Model, tea.Cmd) {
	q, header, ok, err := m.src.Current()
	if err != nil {
		m.err = err
		return m.finish(EndQuit)
	}
	if !ok {
		return m.finish(EndFinished)
	}
	m.choice = components.NewMultiChoice(header, q)
	m.guessed = false
	m.state = stateAsking
	return m, nil
}

func (m Model) finish(e Ending) (Model, tea.Cmd) {
	m.state = stateDone
	m.ending = e
	return m, tea.Quit
}

func (m Model) expired() bool {
	d, ok := m.src.Deadline()
	return ok && !m.clock().Before(d)
}

func (m Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m Model) render() string {
	var b strings.Builder
	switch m.state {
	case stateDone:
		return ""
	case stateAsking:
		b.WriteString(m.choice.View())
		b.WriteString("\n")
		if d, ok := m.src.Deadline(); ok {
			left := max(0, d.Sub(m.clock())).Round(time.Second)
			b.WriteString(theme.Subtitle.Render(left.String() + " left  "))
		}
		if m.guessed {
			b.WriteString(theme.Warning.Render("(guessing) "))
		}
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Move, m.keys.Pick, m.keys.Guess, m.keys.Quit}))
	case stateFeedback:
		b.WriteString(m.choice.View())
		b.WriteString("\n")
		if m.result.Correct {
			b.WriteString(theme.Correct.Render("✓ Correct"))
		} else {
			b.WriteString(theme.Incorrect.Render("✗ Wrong") + " answer: " + m.result.Answer)
		}
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  (%s, next review %s)", m.result.Outcome, m.result.State.NextReviewAt)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("press any key to continue"))
	}
	b.WriteString("\n")
	return b.String()
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run drives src on in and out until it is over.
func Run(ctx context.Context, src Source, in io.Reader, out io.Writer, opts ...Option) (Ending, error) {
	p := tea.NewProgram(New(ctx, src, opts...), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return EndQuit, fmt.Errorf("run session: %w", err)
	}
	m := final.(Model)
	return m.Ending(), m.Err()
}
