package due

import "time"

// Urgency is how pressing a due date is relative to now. It drives both the
// board colors and the warning suffixes in the text export, so both go
// through Classify and can never disagree.
type Urgency int

const (
	OnTime Urgency = iota
	DueToday
	Overdue
	DueSoon
	NoDate
)

func (u Urgency) String() string {
	switch u {
	case DueToday:
		return "due today"
	case Overdue:
		return "overdue"
	case DueSoon:
		return "due soon"
	case NoDate:
		return "no date"
	}
	return "on time"
}

// soonWindowDays is the inclusive [now, now+6d] window for DueSoon.
const soonWindowDays = 6

// Classify maps a due date to its urgency relative to now. Comparison is by
// calendar day: the today-check runs before the overdue-check so a date equal
// to now's day is never reported overdue regardless of time of day.
func Classify(due, now time.Time) Urgency {
	if due.IsZero() {
		return NoDate
	}
	d, n := DayOf(due), DayOf(now)
	switch {
	case d.Equal(n):
		return DueToday
	case d.Before(n):
		return Overdue
	case !d.After(n.AddDate(0, 0, soonWindowDays)):
		return DueSoon
	}
	return OnTime
}

// DayOf truncates a time to the start of its calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
