package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repaso/internal/backup"
	"github.com/abhisek/repaso/internal/bank"
	"github.com/abhisek/repaso/internal/bank/banktest"
	"github.com/abhisek/repaso/internal/exam"
	"github.com/abhisek/repaso/internal/review"
	"github.com/abhisek/repaso/internal/session"
	"github.com/abhisek/repaso/internal/spacedrep"
	"github.com/abhisek/repaso/internal/store"
	"github.com/abhisek/repaso/internal/study"
)

var t0 = time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func openStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newApp(t *testing.T, st *store.Store, clock *fakeClock) *App {
	t.Helper()
	opts := Options{
		Pool:      banktest.MinimumExamPool(),
		Scheduler: spacedrep.NewFSRS(spacedrep.DefaultConfig()),
		Location:  time.UTC,
		Clock:     clock.Now,
	}
	if st != nil {
		opts.Snapshots = st.SnapshotRepo()
		opts.Exams = st.ExamRepo()
		opts.Events = st.EventRepo()
	}
	a, err := New(opts)
	require.NoError(t, err)
	require.NoError(t, a.Load(context.Background()))
	return a
}

func TestNew_RequiresPoolAndScheduler(t *testing.T) {
	_, err := New(Options{Scheduler: spacedrep.NewFSRS(spacedrep.DefaultConfig())})
	assert.Error(t, err)
	_, err = New(Options{Pool: banktest.MinimumExamPool()})
	assert.Error(t, err)
}

func TestAnswer(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil, &fakeClock{now: t0})

	res, err := a.Answer(ctx, AnswerInput{QuestionID: "1001", Chosen: "a", Confidence: spacedrep.OutcomeKnew})
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, spacedrep.OutcomeKnew, res.Outcome)
	assert.Equal(t, 1, res.State.CorrectCount)
	assert.Equal(t, "2025-12-25", res.State.LastSeenAt)

	res, err = a.Answer(ctx, AnswerInput{QuestionID: "1001", Chosen: "c", Confidence: spacedrep.OutcomeKnew})
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, "a", res.Answer)

	s, ok := a.Review("1001")
	require.True(t, ok)
	assert.Equal(t, 2, s.SeenCount)
	assert.Equal(t, 1, s.WrongCount)
	assert.Equal(t, "2025-12-25", s.LastWrongAt)
	assert.Equal(t, 2, s.LeechScore)

	_, err = a.Answer(ctx, AnswerInput{QuestionID: "nope", Chosen: "a"})
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	_, err = a.Answer(ctx, AnswerInput{QuestionID: "1001", Chosen: "a", Confidence: spacedrep.OutcomeWrong})
	assert.Error(t, err)
}

func TestStudySessionRequeue(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil, &fakeClock{now: t0})

	active, breakdown := a.StartStudy(10)
	require.Len(t, active.IDs, 10)
	assert.Equal(t, 10, breakdown.New)

	first := active.IDs[0]
	_, err := a.Answer(ctx, AnswerInput{QuestionID: first, Chosen: "z"})
	require.NoError(t, err)
	require.NoError(t, a.NextInSession())

	cur, ok := a.ActiveSession()
	require.True(t, ok)
	assert.Len(t, cur.IDs, 10)
	assert.Equal(t, first, cur.IDs[6])
	assert.Equal(t, []string{first}, cur.WrongIDs)

	sum, err := a.FinishSession()
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Answered)

	_, err = a.FinishSession()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.ErrorIs(t, a.NextInSession(), ErrNoActiveSession)
}

func TestStartFocused(t *testing.T) {
	a := newApp(t, nil, &fakeClock{now: t0})

	active, _ := a.StartFocused(10, 5, true)
	require.Len(t, active.IDs, 7)
	for _, id := range active.IDs {
		assert.Equal(t, bank.TopicID(5), banktest.TopicOf(id))
	}

	active, _ = a.StartFocused(10, 3, false)
	require.Len(t, active.IDs, 10)
	assert.Equal(t, "3001", active.IDs[0])
}

func TestTargetedSession(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil, &fakeClock{now: t0})

	_, err := a.StartTargeted(study.AllQuestions())
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = a.Answer(ctx, AnswerInput{QuestionID: "5002", Chosen: "b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"5002"}, a.WeakIDs(study.AllQuestions()))
	assert.Empty(t, a.WeakIDs(study.TopicScope(1)))

	active, err := a.StartTargeted(study.AllQuestions())
	require.NoError(t, err)
	assert.Equal(t, session.KindTargeted, active.Kind)
	assert.Equal(t, []string{"5002"}, active.IDs)
}

func TestSimulacro(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: t0}
	st := openStore(t)
	a := newApp(t, st, clock)

	active, err := a.StartSimulacro(exam.ModeOfficial, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Len(t, active.IDs, exam.Size)
	deadline, ok := active.Deadline()
	require.True(t, ok)
	assert.Equal(t, t0.Add(exam.DefaultDuration), deadline)

	for i := 0; i < exam.Size; i++ {
		q, ok, err := a.CurrentQuestion()
		require.NoError(t, err)
		require.True(t, ok)
		chosen := q.Answer
		if i < 5 {
			chosen = "z"
		}
		_, err = a.Answer(ctx, AnswerInput{QuestionID: q.ID, Chosen: chosen})
		require.NoError(t, err)
		require.NoError(t, a.NextInSession())
	}
	_, ok, err = a.CurrentQuestion()
	require.NoError(t, err)
	assert.False(t, ok)

	clock.now = t0.Add(20 * time.Minute)
	rec, err := a.FinishSimulacro(ctx, exam.ModeOfficial)
	require.NoError(t, err)
	assert.Equal(t, 20, rec.Correct)
	assert.True(t, rec.Passed)
	assert.Equal(t, 1200, rec.TimeSpentSec)
	assert.Equal(t, active.ID, rec.SessionID)

	require.NoError(t, a.RecordExamResult(ctx, rec))
	assert.Len(t, a.History(), 1)

	_, err = a.FinishSimulacro(ctx, exam.ModeOfficial)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	reloaded := newApp(t, st, clock)
	h := reloaded.History()
	require.Len(t, h, 1)
	assert.Equal(t, rec.SessionID, h[0].SessionID)
	assert.Equal(t, exam.ModeOfficial, h[0].Mode)

	n, err := st.EventRepo().AnswerCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, exam.Size, n)
}

func TestSimulacro_InsufficientPool(t *testing.T) {
	a, err := New(Options{
		Pool:      banktest.Pool(map[bank.TopicID]int{1: 3}),
		Scheduler: spacedrep.NewFSRS(spacedrep.DefaultConfig()),
	})
	require.NoError(t, err)

	_, err = a.StartSimulacro(exam.ModeAdaptive, nil)
	var ipe *exam.InsufficientPoolError
	assert.ErrorAs(t, err, &ipe)
	_, ok := a.ActiveSession()
	assert.False(t, ok)
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: t0}
	st := openStore(t)

	a := newApp(t, st, clock)
	_, err := a.Answer(ctx, AnswerInput{QuestionID: "2001", Chosen: "a", Confidence: spacedrep.OutcomeGuessed})
	require.NoError(t, err)
	settings := study.Settings{DefaultPreset: study.PresetShort, RequeueWrong: false, FocusTopic: 2}
	require.NoError(t, a.SetSettings(ctx, settings))

	b := newApp(t, st, clock)
	assert.Equal(t, a.Reviews(), b.Reviews())
	assert.Equal(t, settings, b.Settings())
}

func TestSetSettings_Validates(t *testing.T) {
	a := newApp(t, nil, &fakeClock{now: t0})
	assert.Error(t, a.SetSettings(context.Background(), study.Settings{DefaultPreset: "huge"}))
	assert.Error(t, a.SetSettings(context.Background(), study.Settings{DefaultPreset: study.PresetLong, FocusTopic: 8}))
	assert.Equal(t, study.DefaultSettings(), a.Settings())
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: t0}
	src := newApp(t, nil, clock)
	for _, id := range []string{"1001", "1002", "3001"} {
		_, err := src.Answer(ctx, AnswerInput{QuestionID: id, Chosen: "a"})
		require.NoError(t, err)
	}
	_, err := src.Answer(ctx, AnswerInput{QuestionID: "4001", Chosen: "b"})
	require.NoError(t, err)
	_, err = src.ToggleManualWeak(ctx, "1002")
	require.NoError(t, err)
	require.NoError(t, src.SetSettings(ctx, study.Settings{DefaultPreset: study.PresetLong, FocusTopic: 4, OnlyFocus: true}))

	for _, compress := range []bool{false, true} {
		data, err := src.Export(compress)
		require.NoError(t, err)

		dst := newApp(t, nil, clock)
		require.NoError(t, dst.Import(ctx, data))
		assert.Equal(t, src.Reviews(), dst.Reviews())
		assert.Equal(t, src.Settings(), dst.Settings())
	}
}

func TestImport_RejectsWithoutChanges(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil, &fakeClock{now: t0})
	_, err := a.Answer(ctx, AnswerInput{QuestionID: "1001", Chosen: "a"})
	require.NoError(t, err)
	a.StartStudy(5)
	before := a.Reviews()

	err = a.Import(ctx, []byte(`{"schemaVersion":9,"progressById":{}}`))
	var ie *backup.ImportError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "Unsupported schemaVersion", ie.Reason)

	assert.Equal(t, before, a.Reviews())
	_, ok := a.ActiveSession()
	assert.True(t, ok, "session survives a rejected import")
}

func TestAdaptiveFlow(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil, &fakeClock{now: t0})

	_, _, err := a.NextAdaptive()
	assert.ErrorIs(t, err, ErrAdaptiveInactive)
	assert.ErrorIs(t, a.RecordAdaptiveAnswer("1001", true), ErrAdaptiveInactive)

	id, ok := a.StartAdaptive(study.TopicScope(3), nil)
	require.True(t, ok)

	res, err := a.Answer(ctx, AnswerInput{QuestionID: id, Chosen: "a"})
	require.NoError(t, err)
	require.NoError(t, a.RecordAdaptiveAnswer(id, res.Correct))

	next, ok, err := a.NextAdaptive()
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, id, next, "confident answer today is not repeated")

	final, err := a.FinishAdaptive()
	require.NoError(t, err)
	assert.Equal(t, 1, final.Answered)
	assert.Equal(t, 1, final.Correct)
	assert.False(t, a.Adaptive().Active)
}

func TestToggleManualWeak(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, nil, &fakeClock{now: t0})

	_, err := a.ToggleManualWeak(ctx, "1001")
	assert.ErrorIs(t, err, ErrNotSeen)
	_, err = a.ToggleManualWeak(ctx, "bogus")
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	_, err = a.Answer(ctx, AnswerInput{QuestionID: "1001", Chosen: "a"})
	require.NoError(t, err)
	weak, err := a.ToggleManualWeak(ctx, "1001")
	require.NoError(t, err)
	assert.True(t, weak)

	s, _ := a.Review("1001")
	assert.True(t, review.IsWeak(&s, a.Today()))

	weak, err = a.ToggleManualWeak(ctx, "1001")
	require.NoError(t, err)
	assert.False(t, weak)
}

func TestResetAndAdopt(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, openStore(t), &fakeClock{now: t0})
	_, err := a.Answer(ctx, AnswerInput{QuestionID: "1001", Chosen: "a"})
	require.NoError(t, err)
	require.NoError(t, a.SetSettings(ctx, study.Settings{DefaultPreset: study.PresetShort}))

	require.NoError(t, a.Reset(ctx))
	assert.Empty(t, a.Reviews())
	assert.Equal(t, study.PresetShort, a.Settings().DefaultPreset)
	assert.Equal(t, 0, a.Level().Seen)

	remote := review.Map{"5001": {NextReviewAt: "2026-01-10", SeenCount: 4, CorrectCount: 4}}
	require.NoError(t, a.AdoptReviews(ctx, remote))
	assert.Equal(t, remote, a.Reviews())

	remote["5001"].SeenCount = 99
	s, _ := a.Review("5001")
	assert.Equal(t, 4, s.SeenCount, "adopted map is copied")
}

// flakySnapshots is an in-memory SnapshotRepo whose Save fails on demand.
type flakySnapshots struct {
	fail  bool
	saved []*store.Snapshot
}

func (r *flakySnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	if r.fail {
		return errors.New("disk full")
	}
	snap.ID = int64(len(r.saved) + 1)
	r.saved = append(r.saved, snap)
	return nil
}

func (r *flakySnapshots) Latest(context.Context) (*store.Snapshot, error) {
	if len(r.saved) == 0 {
		return nil, nil
	}
	return r.saved[len(r.saved)-1], nil
}

func (r *flakySnapshots) Prune(context.Context, int) error { return nil }

func TestFailedSaveLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: t0}
	snaps := &flakySnapshots{}
	a, err := New(Options{
		Pool:      banktest.MinimumExamPool(),
		Scheduler: spacedrep.NewFSRS(spacedrep.DefaultConfig()),
		Location:  time.UTC,
		Clock:     clock.Now,
		Snapshots: snaps,
	})
	require.NoError(t, err)

	_, err = a.Answer(ctx, AnswerInput{QuestionID: "1001", Chosen: "a"})
	require.NoError(t, err)
	a.StartStudy(5)
	a.StartAdaptive(study.TopicScope(3), nil)

	src := newApp(t, nil, clock)
	_, err = src.Answer(ctx, AnswerInput{QuestionID: "4001", Chosen: "b"})
	require.NoError(t, err)
	require.NoError(t, src.SetSettings(ctx, study.Settings{DefaultPreset: study.PresetLong, FocusTopic: 4}))
	payload, err := src.Export(false)
	require.NoError(t, err)

	reviews := a.Reviews()
	settings := a.Settings()
	active, _ := a.ActiveSession()
	adaptive := a.Adaptive()
	snaps.fail = true

	assertUnchanged := func(op string) {
		t.Helper()
		assert.Equal(t, reviews, a.Reviews(), op)
		assert.Equal(t, settings, a.Settings(), op)
		got, ok := a.ActiveSession()
		require.True(t, ok, op)
		assert.Equal(t, active, got, op)
		assert.Equal(t, adaptive, a.Adaptive(), op)
	}

	assert.Error(t, a.Import(ctx, payload))
	assertUnchanged("import")

	assert.Error(t, a.AdoptReviews(ctx, review.Map{"5001": {SeenCount: 3}}))
	assertUnchanged("adopt")

	assert.Error(t, a.SetSettings(ctx, study.Settings{DefaultPreset: study.PresetShort}))
	assertUnchanged("settings")

	assert.Error(t, a.Reset(ctx))
	assertUnchanged("reset")

	weak, err := a.ToggleManualWeak(ctx, "1001")
	assert.Error(t, err)
	assert.False(t, weak)
	assertUnchanged("toggle weak")

	_, err = a.Answer(ctx, AnswerInput{QuestionID: "1002", Chosen: "a"})
	assert.Error(t, err)
	assertUnchanged("answer")

	snaps.fail = false
	require.NoError(t, a.Import(ctx, payload))
	assert.Equal(t, src.Reviews(), a.Reviews())
}

func TestAnswer_RejectsAfterDeadline(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: t0}
	a := newApp(t, nil, clock)

	_, err := a.StartSimulacro(exam.ModeOfficial, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	q, ok, err := a.CurrentQuestion()
	require.NoError(t, err)
	require.True(t, ok)
	_, err = a.Answer(ctx, AnswerInput{QuestionID: q.ID, Chosen: q.Answer})
	require.NoError(t, err)
	require.NoError(t, a.NextInSession())

	clock.now = t0.Add(exam.DefaultDuration + time.Second)
	late, ok, err := a.CurrentQuestion()
	require.NoError(t, err)
	require.True(t, ok)
	_, err = a.Answer(ctx, AnswerInput{QuestionID: late.ID, Chosen: late.Answer})
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, seen := a.Review(late.ID)
	assert.False(t, seen, "late answer leaves no review state")

	rec, err := a.FinishSimulacro(ctx, exam.ModeOfficial)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Correct)
	assert.Equal(t, int(exam.DefaultDuration/time.Second), rec.TimeSpentSec)
}
