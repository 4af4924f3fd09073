package spacedrep

import "testing"

func TestGradeFromOutcome(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    Grade
	}{
		{OutcomeWrong, GradeAgain},
		{OutcomeGuessed, GradeHard},
		{OutcomeKnew, GradeGood},
	}
	for _, tt := range tests {
		if got := GradeFromOutcome(tt.outcome); got != tt.want {
			t.Errorf("GradeFromOutcome(%q) = %d, want %d", tt.outcome, got, tt.want)
		}
	}
}

func TestOutcomeFor(t *testing.T) {
	if got := OutcomeFor(false, OutcomeKnew); got != OutcomeWrong {
		t.Errorf("incorrect answer: got %q, want wrong", got)
	}
	if got := OutcomeFor(true, OutcomeKnew); got != OutcomeKnew {
		t.Errorf("correct+knew: got %q", got)
	}
	if got := OutcomeFor(true, OutcomeGuessed); got != OutcomeGuessed {
		t.Errorf("correct+guessed: got %q", got)
	}
	if got := OutcomeFor(true, ""); got != OutcomeGuessed {
		t.Errorf("correct without tag: got %q, want guessed", got)
	}
}

func TestOutcomeValid(t *testing.T) {
	for _, o := range []Outcome{OutcomeWrong, OutcomeGuessed, OutcomeKnew} {
		if !o.Valid() {
			t.Errorf("%q should be valid", o)
		}
	}
	if Outcome("easy").Valid() {
		t.Error("unknown outcome should be invalid")
	}
}
