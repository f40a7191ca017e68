package scheduler

import (
	"github.com/millbrookfab/shop-planner/backend/internal/domain"
)

// CapacityFor returns the effective hour capacity for date. Weekends and
// malformed dates carry zero capacity. An override for the date is
// authoritative, even when it is zero; otherwise the weekday default applies.
func CapacityFor(date string, settings *domain.ScheduleSettings) float64 {
	t, err := ParseDay(date)
	if err != nil || IsWeekend(t) {
		return 0
	}

	for _, override := range settings.CapacityOverrides {
		if override.Date == date {
			return override.Hours
		}
	}

	// time.Monday is 1, so Monday..Friday maps to index 0..4.
	return settings.DailyCapacityByDay[int(t.Weekday())-1]
}
