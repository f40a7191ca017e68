package repository

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/millbrookfab/shop-planner/backend/internal/domain"
)

func (r *Repository) CreateJob(job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	} else if _, exists := r.jobs[job.ID]; exists {
		return ErrConflict
	}

	job.CreatedAt = time.Now()
	job.Version = 1
	if job.ScheduledSegments == nil {
		job.ScheduledSegments = make([]domain.Segment, 0)
	}

	r.jobs[job.ID] = job.Clone()

	return nil
}

func (r *Repository) GetJobByID(id string) (*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, exists := r.jobs[id]
	if !exists {
		return nil, ErrNotFound
	}

	return job.Clone(), nil
}

// GetAllJobs returns the session's jobs ordered by creation time, with ID as
// the tie-break so the order is stable.
func (r *Repository) GetAllJobs() ([]*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]*domain.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, job.Clone())
	}
	slices.SortFunc(jobs, func(a, b *domain.Job) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return jobs, nil
}

func (r *Repository) UpdateJob(job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.jobs[job.ID]
	if !exists {
		return ErrNotFound
	}

	job.CreatedAt = existing.CreatedAt
	job.Version = existing.Version + 1
	r.jobs[job.ID] = job.Clone()

	return nil
}

func (r *Repository) DeleteJob(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[id]; !exists {
		return ErrNotFound
	}
	delete(r.jobs, id)

	return nil
}

// ReplaceJobSegments writes an allocation run's recomputed segments (and any
// updated preferred start dates) back into the store. Jobs that no longer
// exist are skipped: a delete racing an allocation must not resurrect them.
func (r *Repository) ReplaceJobSegments(jobs []*domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, job := range jobs {
		existing, exists := r.jobs[job.ID]
		if !exists {
			continue
		}

		updated := job.Clone()
		updated.CreatedAt = existing.CreatedAt
		updated.Version = existing.Version + 1
		r.jobs[job.ID] = updated
	}

	return nil
}
