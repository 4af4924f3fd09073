package session

import "time"

// Timed reports whether the session has a deadline.
func (a *Active) Timed() bool {
	return a.Duration > 0
}

// Deadline returns when a timed session runs out.
func (a *Active) Deadline() (time.Time, bool) {
	if !a.Timed() {
		return time.Time{}, false
	}
	return a.StartedAt.Add(a.Duration), true
}

// Remaining returns the time left at now, never negative. Untimed sessions
// return 0.
func (a *Active) Remaining(now time.Time) time.Duration {
	d, ok := a.Deadline()
	if !ok {
		return 0
	}
	return max(0, d.Sub(now))
}

// Expired reports whether a timed session is past its deadline.
func (a *Active) Expired(now time.Time) bool {
	d, ok := a.Deadline()
	return ok && !now.Before(d)
}

// TimeSpent returns the elapsed time at now, clamped to [0, Duration] for
// timed sessions. It is 0 when no start time was recorded.
func (a *Active) TimeSpent(now time.Time) time.Duration {
	if a.StartedAt.IsZero() {
		return 0
	}
	spent := max(0, now.Sub(a.StartedAt))
	if a.Timed() {
		spent = min(spent, a.Duration)
	}
	return spent
}
