package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/millbrookfab/shop-planner/backend/internal/domain"
)

// maxWeekdaySteps bounds the per-job placement loop at roughly two years of
// weekdays. It is a safety valve against pathological inputs (for example a
// capacity configuration that is zero everywhere), not a business rule.
const maxWeekdaySteps = 730

// Result is the output of one allocation run. Days is keyed by weekday date
// strings and owned exclusively by the run that produced it; Jobs is a deep
// copy of the input with recomputed segments.
type Result struct {
	Days     map[string]*domain.DayData `json:"days"`
	Jobs     []*domain.Job              `json:"jobs"`
	Warnings []string                   `json:"warnings"`
}

// Allocate assigns each job's required hours to weekdays, greedily and in
// priority order, never exceeding the effective capacity of any day. Jobs
// processed earlier consume capacity that later jobs then cannot use; that
// sharing is what turns the priority order into priority scheduling. The
// input job list is not mutated.
func Allocate(jobs []*domain.Job, settings *domain.ScheduleSettings, planningStart string) *Result {
	start := NextWeekday(DayOrToday(planningStart))

	ordered := make([]*domain.Job, len(jobs))
	for i, job := range jobs {
		ordered[i] = job.Clone()
	}
	Prioritize(ordered)

	result := &Result{
		Days: make(map[string]*domain.DayData),
		Jobs: ordered,
	}

	for _, job := range ordered {
		job.ScheduledSegments = make([]domain.Segment, 0)
		remaining := job.RequiredHours

		current := effectiveStart(job, start)

		for steps := 0; remaining > 0 && steps < maxWeekdaySteps; steps++ {
			current = NextWeekday(current)
			key := FormatDay(current)

			day, exists := result.Days[key]
			if !exists {
				day = &domain.DayData{Assignments: make([]domain.DailyAssignment, 0)}
				result.Days[key] = day
			}

			available := math.Max(0, CapacityFor(key, settings)-day.TotalHoursAssigned)
			grant := math.Min(remaining, available)

			if grant > 0 {
				job.ScheduledSegments = append(job.ScheduledSegments, domain.Segment{Date: key, Hours: grant})
				day.Assignments = append(day.Assignments, domain.DailyAssignment{
					JobID:         job.ID,
					HoursAssigned: grant,
					JobName:       job.Name,
					IsUrgent:      job.IsUrgent,
					ActivityType:  job.ActivityType,
					QuoteNumber:   job.QuoteNumber,
					Color:         job.Color,
				})
				day.TotalHoursAssigned += grant
				remaining -= grant
			}

			if remaining <= 0 {
				break
			}
			current = NextCalendarDay(current)
		}

		if remaining > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("job %q (%s) could not be fully scheduled: %.2f hours remain unplaced", job.Name, job.ID, remaining))
		}
	}

	return result
}

// effectiveStart is the later of the job's weekday-normalized preferred
// start date and the planning start date.
func effectiveStart(job *domain.Job, planningStart time.Time) time.Time {
	if job.PreferredStartDate == "" {
		return planningStart
	}

	preferred, err := ParseDay(job.PreferredStartDate)
	if err != nil {
		return planningStart
	}

	preferred = NextWeekday(preferred)
	if preferred.Before(planningStart) {
		return planningStart
	}
	return preferred
}
