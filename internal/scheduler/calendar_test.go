package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ParseDay(s)
	require.NoError(t, err)
	return parsed
}

func TestNextWeekday(t *testing.T) {
	// 2025-01-11 is a Saturday, 2025-01-12 a Sunday, 2025-01-13 a Monday
	assert.Equal(t, "2025-01-13", FormatDay(NextWeekday(day(t, "2025-01-11"))))
	assert.Equal(t, "2025-01-13", FormatDay(NextWeekday(day(t, "2025-01-12"))))

	// weekdays pass through unchanged
	assert.Equal(t, "2025-01-10", FormatDay(NextWeekday(day(t, "2025-01-10"))))
	assert.Equal(t, "2025-01-13", FormatDay(NextWeekday(day(t, "2025-01-13"))))
}

func TestDayOrToday(t *testing.T) {
	assert.Equal(t, "2025-01-06", FormatDay(DayOrToday("2025-01-06")))

	for _, input := range []string{"", "not-a-date", "2025/01/06"} {
		fallback := DayOrToday(input)
		assert.False(t, IsWeekend(fallback), "fallback for %q must be a weekday", input)
	}
}

func TestWeekdayRange_SkipsWeekends(t *testing.T) {
	// starting Thursday, four weekdays span the weekend
	var got []string
	for d := range WeekdayRange(day(t, "2025-01-09"), 4) {
		got = append(got, d)
	}
	assert.Equal(t, []string{"2025-01-09", "2025-01-10", "2025-01-13", "2025-01-14"}, got)
}

func TestWeekdayRange_NormalizesWeekendStart(t *testing.T) {
	var got []string
	for d := range WeekdayRange(day(t, "2025-01-11"), 2) {
		got = append(got, d)
	}
	assert.Equal(t, []string{"2025-01-13", "2025-01-14"}, got)
}

func TestWeekdayRange_Restartable(t *testing.T) {
	seq := WeekdayRange(day(t, "2025-01-06"), 3)

	collect := func() []string {
		var out []string
		for d := range seq {
			out = append(out, d)
		}
		return out
	}

	first := collect()
	second := collect()
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestWeekdayRange_EarlyBreak(t *testing.T) {
	count := 0
	for range WeekdayRange(day(t, "2025-01-06"), 10) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}
