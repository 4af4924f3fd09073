package review

import (
	"github.com/abhisek/repaso/internal/localdate"
	"github.com/abhisek/repaso/internal/spacedrep"
)

// Status is the display classification of a question.
type Status string

const (
	StatusNew      Status = "new"
	StatusDue      Status = "due"
	StatusWeak     Status = "weak"
	StatusMastered Status = "mastered"
	StatusLearning Status = "learning"
)

// AllStatuses lists statuses in display order.
var AllStatuses = []Status{StatusNew, StatusDue, StatusWeak, StatusLearning, StatusMastered}

const (
	// WeakRecencyDays is how long (inclusive) a wrong answer keeps a question weak.
	WeakRecencyDays = 3
	// WeakWrongCount is the lifetime wrong-answer count that makes a question weak.
	WeakWrongCount = 3
	// WeakLeechScore is the leech score that makes a question weak.
	WeakLeechScore = 4
	// MasteredIntervalDays is the scheduled interval at which a question counts as mastered.
	MasteredIntervalDays = 7
	// MasteredNetCorrect is the correct-minus-wrong margin that also counts as mastered.
	MasteredNetCorrect = 3
)

// IsDue reports whether a question scheduled for nextReviewAt should be
// reviewed today. A question scheduled for today that was already seen today
// is not due, so the review that set the date does not trigger it again.
func IsDue(nextReviewAt, today, lastSeenAt string) bool {
	if nextReviewAt == "" {
		return false
	}
	if nextReviewAt < today {
		return true
	}
	if nextReviewAt > today {
		return false
	}
	return lastSeenAt != today
}

// IsWeak reports whether the question needs extra reinforcement.
func IsWeak(s *State, today string) bool {
	if s == nil {
		return false
	}
	if s.ManualWeak {
		return true
	}

	// A confident correct answer clears weakness unless the item is a
	// chronic problem.
	if s.LastResult == spacedrep.OutcomeKnew && s.WrongCount < WeakWrongCount && s.LeechScore < WeakLeechScore {
		return false
	}

	if s.WrongCount >= WeakWrongCount || s.LeechScore >= WeakLeechScore {
		return true
	}
	if s.LastResult == spacedrep.OutcomeGuessed {
		return true
	}

	if s.LastWrongAt != "" {
		if days, err := localdate.DaysBetween(s.LastWrongAt, today); err == nil && days <= WeakRecencyDays {
			return true
		}
	}
	return false
}

// IsMastered reports whether the question is well learned: either the
// scheduler pushed it out at least a week, or the learner has a clear
// margin of correct answers and the last one was not wrong.
func IsMastered(s *State) bool {
	if s == nil {
		return false
	}
	if s.Card.ScheduledDays >= MasteredIntervalDays {
		return true
	}
	return s.CorrectCount-s.WrongCount >= MasteredNetCorrect && s.LastResult != spacedrep.OutcomeWrong
}

// StatusOf classifies one question. Due and weak take precedence over
// mastered.
func StatusOf(id string, m Map, today string) Status {
	s := m[id]
	switch {
	case s == nil:
		return StatusNew
	case IsDue(s.NextReviewAt, today, s.LastSeenAt):
		return StatusDue
	case IsWeak(s, today):
		return StatusWeak
	case IsMastered(s):
		return StatusMastered
	default:
		return StatusLearning
	}
}

// KnewToday reports whether the last answer was a confident correct answer
// given today.
func KnewToday(s *State, today string) bool {
	return s != nil && s.LastResult == spacedrep.OutcomeKnew && s.LastSeenAt == today
}
