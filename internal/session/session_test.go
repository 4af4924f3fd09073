package session

import (
	"fmt"
	"slices"
	"testing"
	"time"
)

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("q%02d", i)
	}
	return out
}

func TestNew(t *testing.T) {
	a := New(KindStudy, ids(3))
	if a.ID == "" {
		t.Error("expected a session id")
	}
	if a.PlannedTotal != 3 {
		t.Errorf("PlannedTotal = %d, want 3", a.PlannedTotal)
	}
	if a.Timed() {
		t.Error("untimed session reports Timed")
	}
	if New(KindStudy, nil).ID == a.ID {
		t.Error("session ids must differ")
	}
}

func TestRecordResult_QueuesWrongOnce(t *testing.T) {
	a := New(KindStudy, ids(3))
	a.RecordResult("q00", false)
	a.RecordResult("q00", false)
	a.RecordResult("q01", true)

	if !slices.Equal(a.WrongIDs, []string{"q00"}) {
		t.Errorf("WrongIDs = %v, want [q00]", a.WrongIDs)
	}
	if a.CorrectBy["q00"] || !a.CorrectBy["q01"] {
		t.Errorf("CorrectBy = %v", a.CorrectBy)
	}

	a.RecordResult("q00", true)
	if !a.CorrectBy["q00"] || len(a.WrongIDs) != 1 {
		t.Errorf("after correct retry: CorrectBy = %v, WrongIDs = %v", a.CorrectBy, a.WrongIDs)
	}
}

func TestAdvance_RequeuesWrong(t *testing.T) {
	a := New(KindStudy, ids(10))
	a.RecordResult("q00", false)
	a.Advance(true)

	want := []string{"q01", "q02", "q03", "q04", "q05", "q00", "q06", "q07", "q08"}
	if got := a.IDs[1:]; !slices.Equal(got, want) {
		t.Errorf("IDs[1:] = %v, want %v", got, want)
	}
	if len(a.IDs) != 10 {
		t.Errorf("len(IDs) = %d, want 10", len(a.IDs))
	}
	if a.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", a.CurrentIndex)
	}
}

func TestAdvance_NoRequeue(t *testing.T) {
	a := New(KindStudy, ids(5))
	a.RecordResult("q00", false)
	a.Advance(false)
	if !slices.Equal(a.IDs, ids(5)) {
		t.Errorf("IDs changed without requeue: %v", a.IDs)
	}

	a.RecordResult("q01", true)
	a.Advance(true)
	if !slices.Equal(a.IDs, ids(5)) {
		t.Errorf("correct answer was requeued: %v", a.IDs)
	}
}

func TestAdvance_ClampsToLastSlot(t *testing.T) {
	a := New(KindStudy, ids(4))
	a.CurrentIndex = 1
	a.RecordResult("q01", false)
	a.Advance(true)

	want := []string{"q00", "q01", "q02", "q01"}
	if !slices.Equal(a.IDs, want) {
		t.Errorf("IDs = %v, want %v", a.IDs, want)
	}
}

func TestAdvance_SkipsWhenAlreadyQueued(t *testing.T) {
	a := New(KindStudy, []string{"a", "b", "a", "c"})
	a.RecordResult("a", false)
	a.Advance(true)

	want := []string{"a", "b", "a", "c"}
	if !slices.Equal(a.IDs, want) {
		t.Errorf("IDs = %v, want %v", a.IDs, want)
	}
}

func TestAdvance_LastQuestionNotRequeued(t *testing.T) {
	a := New(KindStudy, ids(3))
	a.CurrentIndex = 2
	a.RecordResult("q02", false)
	a.Advance(true)

	if !slices.Equal(a.IDs, ids(3)) {
		t.Errorf("IDs = %v, want unchanged", a.IDs)
	}
	if !a.Done() {
		t.Error("expected session to be done")
	}
}

func TestAdvance_AlwaysWrongNeverGrows(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10, 25} {
		a := New(KindStudy, ids(n))
		steps := 0
		for !a.Done() {
			id, _ := a.Current()
			a.RecordResult(id, false)
			a.Advance(true)
			if len(a.IDs) > n {
				t.Fatalf("n=%d: sequence grew to %d", n, len(a.IDs))
			}
			steps++
		}
		if steps != n {
			t.Errorf("n=%d: answered %d questions, want %d", n, steps, n)
		}
	}
}

func TestSummarize(t *testing.T) {
	a := New(KindTargeted, ids(3))
	if s := a.Summarize(); s.Accuracy != 0 || s.Answered != 0 {
		t.Errorf("empty summary = %+v", s)
	}

	a.RecordResult("q00", true)
	a.RecordResult("q01", false)
	s := a.Summarize()
	if s.Answered != 2 || s.Correct != 1 || s.Accuracy != 0.5 {
		t.Errorf("summary = %+v", s)
	}
	if !slices.Equal(s.WrongIDs, []string{"q01"}) {
		t.Errorf("WrongIDs = %v", s.WrongIDs)
	}
}

func TestTimer(t *testing.T) {
	start := time.Date(2025, 12, 23, 10, 0, 0, 0, time.UTC)
	a := New(KindSimulacro, ids(25), WithTimer(start, 45*time.Minute))

	d, ok := a.Deadline()
	if !ok || !d.Equal(start.Add(45*time.Minute)) {
		t.Errorf("Deadline = %v, %v", d, ok)
	}
	if got := a.Remaining(start.Add(40 * time.Minute)); got != 5*time.Minute {
		t.Errorf("Remaining = %v, want 5m", got)
	}
	if a.Expired(start.Add(44 * time.Minute)) {
		t.Error("expired too early")
	}
	if !a.Expired(start.Add(45 * time.Minute)) {
		t.Error("expected expiry at the deadline")
	}
	if got := a.Remaining(start.Add(time.Hour)); got != 0 {
		t.Errorf("Remaining past deadline = %v, want 0", got)
	}
	if got := a.TimeSpent(start.Add(2 * time.Hour)); got != 45*time.Minute {
		t.Errorf("TimeSpent = %v, want clamp to 45m", got)
	}
	if got := a.TimeSpent(start.Add(-time.Minute)); got != 0 {
		t.Errorf("TimeSpent before start = %v, want 0", got)
	}

	untimed := New(KindStudy, ids(1))
	if _, ok := untimed.Deadline(); ok || untimed.Expired(start) || untimed.Remaining(start) != 0 {
		t.Error("untimed session should have no deadline")
	}
}

func TestClone(t *testing.T) {
	a := New(KindStudy, ids(3))
	a.RecordResult("q00", false)
	cp := a.Clone()

	cp.IDs[0] = "changed"
	cp.RecordResult("q01", false)
	if a.IDs[0] != "q00" || len(a.WrongIDs) != 1 || len(a.CorrectBy) != 1 {
		t.Errorf("clone shares state with original: %+v", a)
	}
	if (*Active)(nil).Clone() != nil {
		t.Error("nil clone should be nil")
	}
}
