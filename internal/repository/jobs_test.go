package repository

import (
	"testing"

	"github.com/millbrookfab/shop-planner/backend/internal/config"
	"github.com/millbrookfab/shop-planner/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository() *Repository {
	cfg := &config.Config{}
	cfg.Planner.DefaultDailyCapacity = 8
	return NewRepository(cfg)
}

func TestCreateJob_AssignsIDAndDefaults(t *testing.T) {
	repo := newTestRepository()

	job := &domain.Job{Name: "rails", RequiredHours: 12, ActivityType: domain.ActivityFabrication}
	require.NoError(t, repo.CreateJob(job))

	assert.NotEmpty(t, job.ID)
	assert.False(t, job.CreatedAt.IsZero())
	assert.NotNil(t, job.ScheduledSegments)

	fetched, err := repo.GetJobByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "rails", fetched.Name)
}

func TestGetJobByID_NotFound(t *testing.T) {
	repo := newTestRepository()

	_, err := repo.GetJobByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetJobByID_ReturnsACopy(t *testing.T) {
	repo := newTestRepository()

	job := &domain.Job{Name: "rails", RequiredHours: 12}
	require.NoError(t, repo.CreateJob(job))

	fetched, err := repo.GetJobByID(job.ID)
	require.NoError(t, err)
	fetched.Name = "mutated"
	fetched.ScheduledSegments = append(fetched.ScheduledSegments, domain.Segment{Date: "2025-01-06", Hours: 1})

	again, err := repo.GetJobByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "rails", again.Name)
	assert.Empty(t, again.ScheduledSegments)
}

func TestGetAllJobs_StableOrder(t *testing.T) {
	repo := newTestRepository()

	for _, name := range []string{"one", "two", "three"} {
		require.NoError(t, repo.CreateJob(&domain.Job{Name: name, RequiredHours: 1}))
	}

	first, err := repo.GetAllJobs()
	require.NoError(t, err)
	second, err := repo.GetAllJobs()
	require.NoError(t, err)

	require.Len(t, first, 3)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestUpdateJob_BumpsVersion(t *testing.T) {
	repo := newTestRepository()

	job := &domain.Job{Name: "rails", RequiredHours: 12}
	require.NoError(t, repo.CreateJob(job))

	job.Name = "rails rev B"
	require.NoError(t, repo.UpdateJob(job))

	fetched, err := repo.GetJobByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "rails rev B", fetched.Name)
	assert.Equal(t, int32(2), fetched.Version)
}

func TestDeleteJob(t *testing.T) {
	repo := newTestRepository()

	job := &domain.Job{Name: "rails", RequiredHours: 12}
	require.NoError(t, repo.CreateJob(job))
	require.NoError(t, repo.DeleteJob(job.ID))

	_, err := repo.GetJobByID(job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteJob(job.ID), ErrNotFound)
}

func TestReplaceJobSegments_SkipsDeletedJobs(t *testing.T) {
	repo := newTestRepository()

	kept := &domain.Job{Name: "kept", RequiredHours: 8}
	gone := &domain.Job{Name: "gone", RequiredHours: 8}
	require.NoError(t, repo.CreateJob(kept))
	require.NoError(t, repo.CreateJob(gone))
	require.NoError(t, repo.DeleteJob(gone.ID))

	kept.ScheduledSegments = []domain.Segment{{Date: "2025-01-06", Hours: 8}}
	gone.ScheduledSegments = []domain.Segment{{Date: "2025-01-06", Hours: 8}}
	require.NoError(t, repo.ReplaceJobSegments([]*domain.Job{kept, gone}))

	fetched, err := repo.GetJobByID(kept.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.ScheduledSegments, 1)

	_, err = repo.GetJobByID(gone.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleSettings_DefaultsAndUpdate(t *testing.T) {
	repo := newTestRepository()

	settings, err := repo.GetScheduleSettings()
	require.NoError(t, err)
	for _, hours := range settings.DailyCapacityByDay {
		assert.Equal(t, 8.0, hours)
	}

	settings.DailyCapacityByDay[2] = 4
	settings.CapacityOverrides = []domain.CapacityOverride{{Date: "2025-01-08", Hours: 0}}
	require.NoError(t, repo.UpdateScheduleSettings(settings))

	fetched, err := repo.GetScheduleSettings()
	require.NoError(t, err)
	assert.Equal(t, 4.0, fetched.DailyCapacityByDay[2])
	require.Len(t, fetched.CapacityOverrides, 1)
}
