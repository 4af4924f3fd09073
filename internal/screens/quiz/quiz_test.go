package quiz

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repaso/internal/app"
	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/bank/banktest"
	"github.com/abhisek/repaso/internal/exam"
	"github.com/abhisek/repaso/internal/session"
	"github.com/abhisek/repaso/internal/spacedrep"
	"github.com/abhisek/repaso/internal/study"
)

var t0 = time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newApp(t *testing.T, pool *bank.Pool, clock *fakeClock) *app.App {
	t.Helper()
	a, err := app.New(app.Options{
		Pool:      pool,
		Scheduler: spacedrep.NewFSRS(spacedrep.DefaultConfig()),
		Location:  time.UTC,
		Clock:     clock.Now,
	})
	require.NoError(t, err)
	return a
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// send feeds msgs to m and returns the resulting model and last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_PracticeWithFeedback(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, banktest.Pool(map[bank.TopicID]int{1: 2}), &fakeClock{now: t0})
	a.StartSession(session.KindStudy, []string{"1001", "1002"})

	m := New(ctx, SessionSource{App: a}, WithReveal(true))
	assert.Nil(t, m.Init(), "untimed sessions need no ticks")
	assert.Contains(t, m.render(), "1/2")

	m, _ = send(t, m, keyPress('?'))
	assert.Contains(t, m.render(), "(guessing)")
	m, _ = send(t, m, keyPress('a'))
	assert.Contains(t, m.render(), "Correct")
	s, ok := a.Review("1001")
	require.True(t, ok)
	assert.Equal(t, spacedrep.OutcomeGuessed, s.LastResult)

	m, _ = send(t, m, specialKey(tea.KeyEnter))
	assert.Contains(t, m.render(), "2/2")
	assert.NotContains(t, m.render(), "(guessing)", "guess flag resets per question")

	m, _ = send(t, m, specialKey(tea.KeyDown), specialKey(tea.KeyEnter))
	assert.Contains(t, m.render(), "Wrong")

	m, cmd := send(t, m, keyPress(' '))
	assert.True(t, m.Done())
	assert.Equal(t, EndFinished, m.Ending())
	assert.True(t, isQuit(cmd))
	assert.NoError(t, m.Err())

	sum, err := a.FinishSession()
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Answered)
	assert.Equal(t, 1, sum.Correct)
	assert.Equal(t, []string{"1002"}, sum.WrongIDs)
}

func TestModel_Quit(t *testing.T) {
	a := newApp(t, banktest.Pool(map[bank.TopicID]int{1: 3}), &fakeClock{now: t0})
	a.StartSession(session.KindStudy, []string{"1001", "1002", "1003"})

	m := New(context.Background(), SessionSource{App: a})
	m, _ = send(t, m, keyPress('a'))
	assert.Contains(t, m.render(), "2/3", "without feedback the next question follows")

	m, cmd := send(t, m, keyPress('q'))
	assert.True(t, m.Done())
	assert.Equal(t, EndQuit, m.Ending())
	assert.True(t, isQuit(cmd))

	m, cmd = send(t, m, keyPress('a'))
	assert.Nil(t, cmd, "a finished model ignores keys")
	_, seen := a.Review("1002")
	assert.False(t, seen)
}

func TestModel_IgnoresUnknownLetters(t *testing.T) {
	a := newApp(t, banktest.Pool(map[bank.TopicID]int{2: 1}), &fakeClock{now: t0})
	a.StartSession(session.KindStudy, []string{"2001"})

	m := New(context.Background(), SessionSource{App: a})
	m, _ = send(t, m, keyPress('c'), keyPress('x'))
	assert.False(t, m.Done())
	_, seen := a.Review("2001")
	assert.False(t, seen)
}

func TestModel_ExamDropsLateAnswer(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: t0}
	a := newApp(t, banktest.MinimumExamPool(), clock)
	_, err := a.StartSimulacro(exam.ModeOfficial, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	m := New(ctx, SessionSource{App: a}, WithClock(clock.Now))
	require.NotNil(t, m.Init(), "timed sessions tick")
	assert.Contains(t, m.render(), "45m0s left")

	first := m.choice.Question.ID
	m, _ = send(t, m, specialKey(tea.KeyEnter))
	assert.Contains(t, m.render(), "2/25")
	_, seen := a.Review(first)
	assert.True(t, seen)

	clock.now = t0.Add(10 * time.Minute)
	m, cmd := send(t, m, tickMsg(clock.now))
	assert.False(t, m.Done())
	assert.NotNil(t, cmd, "ticks continue before the deadline")

	late := m.choice.Question.ID
	clock.now = t0.Add(exam.DefaultDuration + time.Second)
	m, cmd = send(t, m, specialKey(tea.KeyEnter))
	assert.True(t, m.Done())
	assert.Equal(t, EndTimeUp, m.Ending())
	assert.True(t, isQuit(cmd))
	_, seen = a.Review(late)
	assert.False(t, seen, "answer after the deadline is dropped")
}

func TestModel_TickEndsAtDeadline(t *testing.T) {
	clock := &fakeClock{now: t0}
	a := newApp(t, banktest.MinimumExamPool(), clock)
	_, err := a.StartSimulacro(exam.ModeOfficial, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	m := New(context.Background(), SessionSource{App: a}, WithClock(clock.Now))
	clock.now = t0.Add(exam.DefaultDuration)
	m, cmd := send(t, m, tickMsg(clock.now))
	assert.Equal(t, EndTimeUp, m.Ending())
	assert.True(t, isQuit(cmd))
}

func TestModel_Adaptive(t *testing.T) {
	a := newApp(t, banktest.Pool(map[bank.TopicID]int{3: 4}), &fakeClock{now: t0})
	_, ok := a.StartAdaptive(study.TopicScope(3), nil)
	require.True(t, ok)

	src := AdaptiveSource{App: a, Scope: study.TopicScope(3)}
	m := New(context.Background(), src, WithReveal(true))
	assert.Contains(t, m.render(), "0 answered")

	m, _ = send(t, m, keyPress('a'), keyPress('n'))
	assert.False(t, m.Done())
	assert.True(t, strings.Contains(m.render(), "1 answered · 1 correct"), m.render())
	assert.Equal(t, 1, a.Adaptive().Answered)
}

func TestModel_EmptySessionQuitsAtOnce(t *testing.T) {
	a := newApp(t, banktest.Pool(map[bank.TopicID]int{1: 1}), &fakeClock{now: t0})
	a.StartSession(session.KindStudy, nil)

	m := New(context.Background(), SessionSource{App: a})
	assert.True(t, m.Done())
	assert.Equal(t, EndFinished, m.Ending())
	assert.True(t, isQuit(m.Init()))
}

func TestConfirmModel(t *testing.T) {
	var m tea.Model = ConfirmModel{Question: "Delete?"}
	m, cmd := m.Update(keyPress('y'))
	assert.True(t, m.(ConfirmModel).Yes)
	assert.True(t, isQuit(cmd))

	m = ConfirmModel{Question: "Delete?"}
	m, cmd = m.Update(specialKey(tea.KeyEnter))
	assert.False(t, m.(ConfirmModel).Yes)
	assert.True(t, isQuit(cmd))
}
