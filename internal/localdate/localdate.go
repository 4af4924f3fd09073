// Package localdate handles the calendar-day strings ("YYYY-MM-DD") that all
// review scheduling is expressed in.
package localdate

import (
	"fmt"
	"time"
)

// Layout is the day-string format. Day strings in this layout sort
// lexicographically in chronological order.
const Layout = "2006-01-02"

// Format returns the local calendar day of t in loc.
func Format(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(Layout)
}

// Today returns the local calendar day of now.
func Today(now time.Time, loc *time.Location) string {
	return Format(now, loc)
}

// Parse interprets s as local midnight in loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return t, nil
}

// Valid reports whether s is a well-formed day string.
func Valid(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

// DaysBetween returns the number of calendar days from `from` to `to`.
// Negative when to is before from.
func DaysBetween(from, to string) (int, error) {
	a, err := time.Parse(Layout, from)
	if err != nil {
		return 0, fmt.Errorf("parse day %q: %w", from, err)
	}
	b, err := time.Parse(Layout, to)
	if err != nil {
		return 0, fmt.Errorf("parse day %q: %w", to, err)
	}
	// Both are UTC midnights, so the difference is a whole number of days.
	return int(b.Sub(a).Hours() / 24), nil
}

// AddDays returns the day string n days after s.
func AddDays(s string, n int) (string, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("parse day %q: %w", s, err)
	}
	return t.AddDate(0, 0, n).Format(Layout), nil
}
