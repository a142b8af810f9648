package due

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestClassify(t *testing.T) {
	now := time.Date(2024, 1, 5, 15, 30, 0, 0, time.Local)

	cases := []struct {
		name string
		due  time.Time
		want Urgency
	}{
		{"no date", time.Time{}, NoDate},
		{"same day", date(2024, 1, 5), DueToday},
		{"same day, earlier hour", time.Date(2024, 1, 5, 8, 0, 0, 0, time.Local), DueToday},
		{"yesterday", date(2024, 1, 4), Overdue},
		{"long past", date(2023, 11, 20), Overdue},
		{"tomorrow", date(2024, 1, 6), DueSoon},
		{"window edge, now+6", date(2024, 1, 11), DueSoon},
		{"past the window, now+7", date(2024, 1, 12), OnTime},
		{"far out", date(2024, 3, 1), OnTime},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(Classify(c.due, now), c.want)
		})
	}
}

// a date equal to now's calendar day is today, never overdue, even when the
// due instant is before the now instant
func TestClassify_TodayBeatsOverdue(t *testing.T) {
	is := is.New(t)
	now := time.Date(2024, 6, 10, 23, 59, 0, 0, time.Local)
	due := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	is.Equal(Classify(due, now), DueToday)
}

func TestDayOf(t *testing.T) {
	is := is.New(t)
	at := time.Date(2024, 1, 5, 23, 59, 59, 123, time.Local)
	is.Equal(DayOf(at), date(2024, 1, 5))
}
