package scheduler

import (
	"iter"
	"time"
)

const DayFormat = "2006-01-02"

func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// NextWeekday returns t unchanged if it falls on a weekday, otherwise the
// following Monday.
func NextWeekday(t time.Time) time.Time {
	for IsWeekend(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// NextCalendarDay steps forward one calendar day. The result may land on a
// weekend; callers that need a scheduling target must re-normalize with
// NextWeekday.
func NextCalendarDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// DayOrToday parses s, falling back to today when s is empty or malformed.
// The fallback is normalized to the next weekday.
func DayOrToday(s string) time.Time {
	if t, err := ParseDay(s); err == nil {
		return t
	}
	return NextWeekday(time.Now())
}

// WeekdayRange yields exactly n weekday date strings, beginning at the first
// weekday on or after start and stepping one calendar day at a time. The
// sequence is restartable: each range over it starts from the beginning.
func WeekdayRange(start time.Time, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		d := NextWeekday(start)
		for emitted := 0; emitted < n; d = NextCalendarDay(d) {
			if IsWeekend(d) {
				continue
			}
			if !yield(FormatDay(d)) {
				return
			}
			emitted++
		}
	}
}
