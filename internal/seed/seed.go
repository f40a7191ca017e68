package seed

import (
	"fmt"
	"time"

	"github.com/millbrookfab/shop-planner/backend/internal/domain"
	"github.com/millbrookfab/shop-planner/backend/internal/repository"
	"github.com/millbrookfab/shop-planner/backend/internal/scheduler"
	"github.com/millbrookfab/shop-planner/backend/internal/utils"
)

// Seed fills the in-memory store with a handful of demo jobs so a fresh
// development instance has something to render. Production instances start
// empty.
func Seed(repo *repository.Repository) error {
	// anchor the demo data on the upcoming Monday
	monday := time.Now().AddDate(0, 0, 1)
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, 1)
	}

	demo := []*domain.Job{
		{
			Name:          "Bracket run for the Hyatt order",
			RequiredHours: 16,
			IsUrgent:      true,
			ActivityType:  domain.ActivityMachining,
			QuoteNumber:   "Q-1042",
		},
		{
			Name:               "Stainless rail welds",
			RequiredHours:      12,
			ActivityType:       domain.ActivityFabrication,
			QuoteNumber:        "Q-1043",
			PreferredStartDate: scheduler.FormatDay(monday.AddDate(0, 0, 2)),
		},
		{
			Name:          "Final inspection, gear housings",
			RequiredHours: 4,
			ActivityType:  domain.ActivityInspection,
		},
		{
			Name:           "Rework customer-supplied fixture",
			RequiredHours:  6,
			ActivityType:   domain.ActivityOther,
			ActivityDetail: "strip, re-drill and refit mounting plate",
		},
	}

	for _, job := range demo {
		job.Color = utils.RandomJobColor()
		if err := repo.CreateJob(job); err != nil {
			return fmt.Errorf("seeding job %q: %w", job.Name, err)
		}
	}

	return nil
}
