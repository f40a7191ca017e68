package repository

import (
	"github.com/millbrookfab/shop-planner/backend/internal/domain"
)

func (r *Repository) GetScheduleSettings() (*domain.ScheduleSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings.Clone(), nil
}

func (r *Repository) UpdateScheduleSettings(settings *domain.ScheduleSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := settings.Clone()
	updated.Version = r.settings.Version + 1
	r.settings = updated

	return nil
}
