package utils

import (
	"fmt"
	"math"

	"github.com/millbrookfab/shop-planner/backend/internal/domain"
	"github.com/millbrookfab/shop-planner/backend/internal/scheduler"
)

// hoursTolerance absorbs float drift when summing segment hours.
const hoursTolerance = 1e-6

// ValidateCapacityOverrides checks that every override references a distinct,
// well-formed weekday date with non-negative hours. Runs at the ingestion
// boundary; the core assumes settings that pass this check.
func ValidateCapacityOverrides(settings *domain.ScheduleSettings) error {
	seen := make(map[string]bool)

	for i, override := range settings.CapacityOverrides {
		t, err := scheduler.ParseDay(override.Date)
		if err != nil {
			return fmt.Errorf("override %d has a malformed date %q, expected YYYY-MM-DD", i+1, override.Date)
		}
		if scheduler.IsWeekend(t) {
			return fmt.Errorf("override %d targets a weekend (%s); only weekdays carry capacity", i+1, override.Date)
		}
		if override.Hours < 0 {
			return fmt.Errorf("override %d has negative hours", i+1)
		}
		if seen[override.Date] {
			return fmt.Errorf("duplicate override for %s", override.Date)
		}
		seen[override.Date] = true
	}

	for i, hours := range settings.DailyCapacityByDay {
		if hours < 0 {
			return fmt.Errorf("weekday capacity %d is negative", i+1)
		}
	}

	return nil
}

// ValidateScheduleAgainstCapacity checks an allocation result against the
// invariants every schedule must satisfy: weekday-only keys, per-day totals
// consistent with their assignments, and no day over its effective capacity.
func ValidateScheduleAgainstCapacity(days map[string]*domain.DayData, settings *domain.ScheduleSettings) error {
	for date, day := range days {
		t, err := scheduler.ParseDay(date)
		if err != nil {
			return fmt.Errorf("schedule contains a malformed date key %q", date)
		}
		if scheduler.IsWeekend(t) {
			return fmt.Errorf("schedule contains the weekend date %s", date)
		}

		sum := 0.0
		for _, assignment := range day.Assignments {
			sum += assignment.HoursAssigned
		}
		if math.Abs(sum-day.TotalHoursAssigned) > hoursTolerance {
			return fmt.Errorf("day %s totals %.4f hours but its assignments sum to %.4f", date, day.TotalHoursAssigned, sum)
		}

		if capacity := scheduler.CapacityFor(date, settings); day.TotalHoursAssigned > capacity+hoursTolerance {
			return fmt.Errorf("day %s has %.4f hours assigned but only %.4f capacity", date, day.TotalHoursAssigned, capacity)
		}
	}

	return nil
}

// ValidateJobSegments checks that a job's segments sit on weekdays and never
// sum past its required hours.
func ValidateJobSegments(job *domain.Job) error {
	sum := 0.0
	for _, segment := range job.ScheduledSegments {
		t, err := scheduler.ParseDay(segment.Date)
		if err != nil {
			return fmt.Errorf("job %q has a segment with malformed date %q", job.Name, segment.Date)
		}
		if scheduler.IsWeekend(t) {
			return fmt.Errorf("job %q has a segment on the weekend date %s", job.Name, segment.Date)
		}
		sum += segment.Hours
	}

	if sum > job.RequiredHours+hoursTolerance {
		return fmt.Errorf("job %q has %.4f hours scheduled but only requires %.4f", job.Name, sum, job.RequiredHours)
	}

	return nil
}
