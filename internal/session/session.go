package session

import "slices"

// Current returns the id at the current position.
func (a *Active) Current() (string, bool) {
	if a.Done() {
		return "", false
	}
	return a.IDs[a.CurrentIndex], true
}

// Done reports whether every planned position has been passed.
func (a *Active) Done() bool {
	return a.CurrentIndex >= len(a.IDs) || a.CurrentIndex >= a.PlannedTotal
}

// RecordResult stores the correctness of an answer to id. A wrong answer
// queues id in WrongIDs unless it is already there. A later correct answer
// overwrites the correctness but leaves WrongIDs alone.
func (a *Active) RecordResult(id string, correct bool) {
	a.CorrectBy[id] = correct
	if !correct && !slices.Contains(a.WrongIDs, id) {
		a.WrongIDs = append(a.WrongIDs, id)
	}
}

// Advance moves to the next position. With requeueWrong set and the current
// question answered wrong, the question is reinserted RequeueOffset places
// later (at most at the last planned slot) unless it is already queued in
// the remaining window. The sequence is cut back to PlannedTotal, so the
// session never grows.
func (a *Active) Advance(requeueWrong bool) {
	if id, ok := a.Current(); ok && requeueWrong && !a.CorrectBy[id] {
		next := a.CurrentIndex + 1
		end := min(a.PlannedTotal, len(a.IDs))
		later := next < end && slices.Contains(a.IDs[next:end], id)
		if !later && next < a.PlannedTotal {
			at := min(a.PlannedTotal-1, a.CurrentIndex+RequeueOffset)
			at = min(at, len(a.IDs))
			a.IDs = slices.Insert(a.IDs, at, id)
			if len(a.IDs) > a.PlannedTotal {
				a.IDs = a.IDs[:a.PlannedTotal]
			}
		}
	}
	a.CurrentIndex++
}

// Answered returns how many distinct questions have a recorded result.
func (a *Active) Answered() int { return len(a.CorrectBy) }

// Summary is the end-of-session tally.
type Summary struct {
	Kind     Kind
	Answered int
	Correct  int
	Accuracy float64
	WrongIDs []string
}

// Summarize tallies the session. Accuracy is 0 when nothing was answered.
func (a *Active) Summarize() Summary {
	s := Summary{
		Kind:     a.Kind,
		Answered: a.Answered(),
		WrongIDs: slices.Clone(a.WrongIDs),
	}
	for _, ok := range a.CorrectBy {
		if ok {
			s.Correct++
		}
	}
	if s.Answered > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Answered)
	}
	return s
}
