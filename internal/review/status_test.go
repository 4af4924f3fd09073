package review

import (
	"testing"

	"github.com/abhisek/repaso/internal/spacedrep"
)

func TestIsDue(t *testing.T) {
	const today = "2025-12-25"
	tests := []struct {
		name       string
		next, seen string
		want       bool
	}{
		{"no state", "", "", false},
		{"overdue", "2025-12-24", "2025-12-20", true},
		{"overdue seen today", "2025-12-24", today, true},
		{"future", "2025-12-26", "", false},
		{"today not seen", today, "", true},
		{"today seen yesterday", today, "2025-12-24", true},
		{"today seen today", today, today, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDue(tt.next, today, tt.seen); got != tt.want {
				t.Errorf("IsDue(%q, %q, %q) = %v, want %v", tt.next, today, tt.seen, got, tt.want)
			}
		})
	}
}

func TestIsWeak(t *testing.T) {
	const today = "2025-12-25"
	tests := []struct {
		name  string
		state *State
		want  bool
	}{
		{"no state", nil, false},
		{"manual flag", &State{ManualWeak: true, LastResult: spacedrep.OutcomeKnew}, true},
		{"three wrongs", &State{WrongCount: 3, LastResult: spacedrep.OutcomeKnew}, true},
		{"leech", &State{LeechScore: 4, LastResult: spacedrep.OutcomeGuessed}, true},
		{"guessed", &State{LastResult: spacedrep.OutcomeGuessed}, true},
		{"wrong within 3 days", &State{LastResult: spacedrep.OutcomeWrong, LastWrongAt: "2025-12-22"}, true},
		{"wrong 4 days ago", &State{LastResult: spacedrep.OutcomeWrong, LastWrongAt: "2025-12-21"}, false},
		{"knew clears recent wrong", &State{LastResult: spacedrep.OutcomeKnew, WrongCount: 1, LastWrongAt: "2025-12-24"}, false},
		{"clean", &State{LastResult: spacedrep.OutcomeKnew}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWeak(tt.state, today); got != tt.want {
				t.Errorf("IsWeak() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsMastered(t *testing.T) {
	tests := []struct {
		name  string
		state *State
		want  bool
	}{
		{"no state", nil, false},
		{"long interval", &State{Card: spacedrep.MemoryState{ScheduledDays: 7}, LastResult: spacedrep.OutcomeWrong}, true},
		{"short interval", &State{Card: spacedrep.MemoryState{ScheduledDays: 6}}, false},
		{"net correct", &State{CorrectCount: 4, WrongCount: 1, LastResult: spacedrep.OutcomeGuessed}, true},
		{"net correct but last wrong", &State{CorrectCount: 5, WrongCount: 1, LastResult: spacedrep.OutcomeWrong}, false},
		{"margin too small", &State{CorrectCount: 3, WrongCount: 1, LastResult: spacedrep.OutcomeKnew}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMastered(tt.state); got != tt.want {
				t.Errorf("IsMastered() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusOf_Precedence(t *testing.T) {
	const today = "2025-12-25"
	m := Map{
		"due-mastered": {NextReviewAt: "2025-12-20", Card: spacedrep.MemoryState{ScheduledDays: 30}, LastResult: spacedrep.OutcomeKnew},
		"weak-mastered": {
			NextReviewAt: "2026-02-01",
			Card:         spacedrep.MemoryState{ScheduledDays: 30},
			ManualWeak:   true,
		},
		"mastered": {NextReviewAt: "2026-02-01", Card: spacedrep.MemoryState{ScheduledDays: 30}, LastResult: spacedrep.OutcomeKnew},
		"learning": {NextReviewAt: "2025-12-27", CorrectCount: 1, LastResult: spacedrep.OutcomeKnew},
	}

	tests := map[string]Status{
		"due-mastered":  StatusDue,
		"weak-mastered": StatusWeak,
		"mastered":      StatusMastered,
		"learning":      StatusLearning,
		"unseen":        StatusNew,
	}
	for id, want := range tests {
		if got := StatusOf(id, m, today); got != want {
			t.Errorf("StatusOf(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestKnewToday(t *testing.T) {
	const today = "2025-12-25"
	if !KnewToday(&State{LastResult: spacedrep.OutcomeKnew, LastSeenAt: today}, today) {
		t.Error("expected knew today")
	}
	if KnewToday(&State{LastResult: spacedrep.OutcomeKnew, LastSeenAt: "2025-12-24"}, today) {
		t.Error("yesterday's answer is not today")
	}
	if KnewToday(&State{LastResult: spacedrep.OutcomeGuessed, LastSeenAt: today}, today) {
		t.Error("guessed is not knew")
	}
	if KnewToday(nil, today) {
		t.Error("nil state")
	}
}
