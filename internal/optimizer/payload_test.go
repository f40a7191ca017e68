package optimizer

import (
	"testing"

	"github.com/millbrookfab/shop-planner/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload_NormalizesAndFilters(t *testing.T) {
	jobs := []*domain.Job{
		{
			ID:                 "a",
			Name:               "rails",
			RequiredHours:      12,
			IsUrgent:           true,
			ActivityType:       domain.ActivityFabrication,
			PreferredStartDate: "2025-01-11", // Saturday
			ScheduledSegments:  []domain.Segment{{Date: "2025-01-06", Hours: 8}},
		},
		{ID: "b", Name: "housings", RequiredHours: 4, ActivityType: domain.ActivityInspection},
	}
	settings := &domain.ScheduleSettings{
		DailyCapacityByDay: [5]float64{8, 8, 8, 8, 8},
		CapacityOverrides: []domain.CapacityOverride{
			{Date: "2025-01-08", Hours: 4},
			{Date: "2025-01-12", Hours: 6}, // Sunday, must be dropped
			{Date: "junk", Hours: 6},       // malformed, must be dropped
		},
	}

	payload := BuildPayload(jobs, settings, "2025-01-06", "front-load urgent work")

	assert.Equal(t, "2025-01-06", payload.PlanningDate)
	assert.Equal(t, "front-load urgent work", payload.Constraints)

	require.Len(t, payload.Jobs, 2)
	assert.Equal(t, "2025-01-13", payload.Jobs[0].PreferredStartDate) // snapped to Monday
	assert.Equal(t, "", payload.Jobs[1].PreferredStartDate)
	assert.Equal(t, []domain.Segment{{Date: "2025-01-06", Hours: 8}}, payload.Jobs[0].ScheduledSegments)

	require.Len(t, payload.Capacity.CapacityOverrides, 1)
	assert.Equal(t, "2025-01-08", payload.Capacity.CapacityOverrides[0].Date)
}

func TestBuildPayload_WeekendPlanningDateNormalizes(t *testing.T) {
	payload := BuildPayload(nil, &domain.ScheduleSettings{}, "2025-01-12", "")
	assert.Equal(t, "2025-01-13", payload.PlanningDate)
}

func TestMergeResult_ReplacesSegmentsAndPreferredStart(t *testing.T) {
	jobs := []*domain.Job{
		{ID: "a", PreferredStartDate: "2025-01-06", ScheduledSegments: []domain.Segment{{Date: "2025-01-06", Hours: 8}}},
		{ID: "untouched", PreferredStartDate: "2025-01-07"},
	}
	result := &OptimizeResult{
		Jobs: []JobResult{
			{
				ID: "a",
				ScheduledSegments: []domain.Segment{
					{Date: "2025-01-11", Hours: 2}, // Saturday segment dropped
					{Date: "2025-01-08", Hours: 4},
					{Date: "2025-01-09", Hours: 4},
				},
			},
		},
	}

	merged := MergeResult(jobs, result)

	require.Len(t, merged, 2)
	assert.Equal(t, []domain.Segment{
		{Date: "2025-01-08", Hours: 4},
		{Date: "2025-01-09", Hours: 4},
	}, merged[0].ScheduledSegments)
	assert.Equal(t, "2025-01-08", merged[0].PreferredStartDate)

	assert.Equal(t, "2025-01-07", merged[1].PreferredStartDate)
	assert.Empty(t, merged[1].ScheduledSegments)

	// the input list is untouched
	assert.Equal(t, "2025-01-06", jobs[0].PreferredStartDate)
	assert.Equal(t, []domain.Segment{{Date: "2025-01-06", Hours: 8}}, jobs[0].ScheduledSegments)
}

func TestMergeResult_FallsBackToSuggestedPreferredStart(t *testing.T) {
	jobs := []*domain.Job{
		{ID: "a", PreferredStartDate: "2025-01-06"},
	}
	result := &OptimizeResult{
		Jobs: []JobResult{
			{ID: "a", PreferredStartDate: "2025-01-11"}, // Saturday, snaps to Monday
		},
	}

	merged := MergeResult(jobs, result)
	assert.Equal(t, "2025-01-13", merged[0].PreferredStartDate)
}

func TestMergeResult_NoUsableDatesLeavesPreferredStartUnchanged(t *testing.T) {
	jobs := []*domain.Job{
		{ID: "a", PreferredStartDate: "2025-01-06"},
	}
	result := &OptimizeResult{
		Jobs: []JobResult{
			{ID: "a", ScheduledSegments: []domain.Segment{{Date: "2025-01-12", Hours: 3}}},
		},
	}

	merged := MergeResult(jobs, result)
	assert.Equal(t, "2025-01-06", merged[0].PreferredStartDate)
	assert.Empty(t, merged[0].ScheduledSegments)
}

func TestMergeResult_UnknownJobIDsIgnored(t *testing.T) {
	jobs := []*domain.Job{{ID: "a"}}
	result := &OptimizeResult{
		Jobs: []JobResult{{ID: "ghost", ScheduledSegments: []domain.Segment{{Date: "2025-01-06", Hours: 1}}}},
	}

	merged := MergeResult(jobs, result)
	require.Len(t, merged, 1)
	assert.Equal(t, "a", merged[0].ID)
	assert.Empty(t, merged[0].ScheduledSegments)
}
