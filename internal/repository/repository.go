package repository

import (
	"errors"
	"sync"

	"github.com/millbrookfab/shop-planner/backend/internal/config"
	"github.com/millbrookfab/shop-planner/backend/internal/domain"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Repository holds all session state in memory. Jobs and settings live only
// for the lifetime of the process; every method copies on the way in and out
// so callers never share mutable state with the store.
type Repository struct {
	cfg *config.Config

	mu         sync.RWMutex
	users      map[int64]*domain.User
	nextUserID int64
	jobs       map[string]*domain.Job
	settings   *domain.ScheduleSettings
}

func NewRepository(cfg *config.Config) *Repository {
	settings := &domain.ScheduleSettings{
		CapacityOverrides: make([]domain.CapacityOverride, 0),
	}
	for i := range settings.DailyCapacityByDay {
		settings.DailyCapacityByDay[i] = cfg.Planner.DefaultDailyCapacity
	}

	return &Repository{
		cfg:        cfg,
		users:      make(map[int64]*domain.User),
		nextUserID: 1,
		jobs:       make(map[string]*domain.Job),
		settings:   settings,
	}
}
