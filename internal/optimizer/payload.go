package optimizer

import (
	"github.com/millbrookfab/shop-planner/backend/internal/domain"
	"github.com/millbrookfab/shop-planner/backend/internal/scheduler"
)

// JobInput is one job as serialized for the optimizer.
type JobInput struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	RequiredHours      float64          `json:"requiredHours"`
	IsUrgent           bool             `json:"isUrgent"`
	ActivityType       string           `json:"activityType"`
	ActivityDetail     string           `json:"activityDetail,omitempty"`
	QuoteNumber        string           `json:"quoteNumber,omitempty"`
	PreferredStartDate string           `json:"preferredStartDate,omitempty"`
	ScheduledSegments  []domain.Segment `json:"scheduledSegments"`
}

// CapacityInput is the weekday-only capacity configuration as serialized for
// the optimizer.
type CapacityInput struct {
	DailyCapacityByDay [5]float64                `json:"dailyCapacityByDay"`
	CapacityOverrides  []domain.CapacityOverride `json:"capacityOverrides"`
}

// Payload is the outbound optimizer request body.
type Payload struct {
	PlanningDate string        `json:"planningDate"`
	Jobs         []JobInput    `json:"jobs"`
	Capacity     CapacityInput `json:"capacity"`
	Constraints  string        `json:"constraints,omitempty"`
}

// JobResult is one job as returned by the optimizer.
type JobResult struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name,omitempty"`
	PreferredStartDate string           `json:"preferredStartDate,omitempty"`
	ScheduledSegments  []domain.Segment `json:"scheduledSegments"`
}

// OptimizeResult is the inbound optimizer response body.
type OptimizeResult struct {
	Jobs        []JobResult `json:"jobs"`
	Explanation string      `json:"explanation,omitempty"`
}

// BuildPayload serializes the current jobs and capacity configuration for
// the optimizer. Preferred start dates are weekday-normalized and weekend
// overrides are dropped, so the optimizer only ever sees schedulable dates.
func BuildPayload(jobs []*domain.Job, settings *domain.ScheduleSettings, planningDate string, constraints string) *Payload {
	payload := &Payload{
		PlanningDate: scheduler.FormatDay(scheduler.NextWeekday(scheduler.DayOrToday(planningDate))),
		Jobs:         make([]JobInput, 0, len(jobs)),
		Constraints:  constraints,
	}

	for _, job := range jobs {
		input := JobInput{
			ID:                job.ID,
			Name:              job.Name,
			RequiredHours:     job.RequiredHours,
			IsUrgent:          job.IsUrgent,
			ActivityType:      string(job.ActivityType),
			ActivityDetail:    job.ActivityDetail,
			QuoteNumber:       job.QuoteNumber,
			ScheduledSegments: append([]domain.Segment(nil), job.ScheduledSegments...),
		}
		if t, err := scheduler.ParseDay(job.PreferredStartDate); err == nil {
			input.PreferredStartDate = scheduler.FormatDay(scheduler.NextWeekday(t))
		}
		payload.Jobs = append(payload.Jobs, input)
	}

	payload.Capacity.DailyCapacityByDay = settings.DailyCapacityByDay
	payload.Capacity.CapacityOverrides = make([]domain.CapacityOverride, 0, len(settings.CapacityOverrides))
	for _, override := range settings.CapacityOverrides {
		t, err := scheduler.ParseDay(override.Date)
		if err != nil || scheduler.IsWeekend(t) {
			continue
		}
		payload.Capacity.CapacityOverrides = append(payload.Capacity.CapacityOverrides, override)
	}

	return payload
}

// MergeResult folds an optimizer response into the current job list, by ID.
// A mentioned job gets its segments replaced (filtered to weekdays) and its
// preferred start date set to the first surviving segment's date, falling
// back to the optimizer's suggested date, else left unchanged. Jobs the
// response does not mention stay untouched.
//
// The merged segments are treated as hints, not final placement: callers are
// expected to re-run the allocator afterwards, which recomputes all segments
// under the capacity invariants. The input list is not mutated.
func MergeResult(jobs []*domain.Job, result *OptimizeResult) []*domain.Job {
	byID := make(map[string]JobResult, len(result.Jobs))
	for _, jobResult := range result.Jobs {
		byID[jobResult.ID] = jobResult
	}

	merged := make([]*domain.Job, 0, len(jobs))
	for _, job := range jobs {
		copied := job.Clone()

		jobResult, mentioned := byID[job.ID]
		if !mentioned {
			merged = append(merged, copied)
			continue
		}

		copied.ScheduledSegments = make([]domain.Segment, 0, len(jobResult.ScheduledSegments))
		for _, segment := range jobResult.ScheduledSegments {
			t, err := scheduler.ParseDay(segment.Date)
			if err != nil || scheduler.IsWeekend(t) {
				continue
			}
			copied.ScheduledSegments = append(copied.ScheduledSegments, segment)
		}

		switch {
		case len(copied.ScheduledSegments) > 0:
			copied.PreferredStartDate = copied.ScheduledSegments[0].Date
		case jobResult.PreferredStartDate != "":
			if t, err := scheduler.ParseDay(jobResult.PreferredStartDate); err == nil {
				copied.PreferredStartDate = scheduler.FormatDay(scheduler.NextWeekday(t))
			}
		}

		merged = append(merged, copied)
	}

	return merged
}
