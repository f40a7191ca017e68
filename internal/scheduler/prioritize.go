package scheduler

import (
	"cmp"
	"slices"

	"github.com/millbrookfab/shop-planner/backend/internal/domain"
)

// effectiveStartKey is the comparable form of a job's preferred start date:
// the weekday-normalized date string, or "" when the job has no preference
// (or an unparsable one).
func effectiveStartKey(j *domain.Job) string {
	if j.PreferredStartDate == "" {
		return ""
	}
	t, err := ParseDay(j.PreferredStartDate)
	if err != nil {
		return ""
	}
	return FormatDay(NextWeekday(t))
}

// Prioritize sorts jobs in place into processing order: urgent jobs first,
// then by effective preferred start date (jobs with a date before jobs
// without), then by ID. IDs are unique, so the order is fully deterministic.
func Prioritize(jobs []*domain.Job) {
	slices.SortFunc(jobs, func(a, b *domain.Job) int {
		if a.IsUrgent != b.IsUrgent {
			if a.IsUrgent {
				return -1
			}
			return 1
		}

		ak, bk := effectiveStartKey(a), effectiveStartKey(b)
		if ak != bk {
			if ak == "" {
				return 1
			}
			if bk == "" {
				return -1
			}
			return cmp.Compare(ak, bk)
		}

		return cmp.Compare(a.ID, b.ID)
	})
}
