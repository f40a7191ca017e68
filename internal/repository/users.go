package repository

import (
	"cmp"
	"slices"
	"time"

	"github.com/millbrookfab/shop-planner/backend/internal/domain"
)

func (r *Repository) CreateUser(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return ErrConflict
		}
	}

	user.ID = r.nextUserID
	r.nextUserID++
	user.CreatedAt = time.Now()
	user.Version = 1

	stored := *user
	r.users[stored.ID] = &stored

	return nil
}

func (r *Repository) GetUserByID(id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, ErrNotFound
	}

	copied := *user
	return &copied, nil
}

func (r *Repository) GetUserByUsername(username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}

	return nil, ErrNotFound
}

func (r *Repository) GetAllUsers() ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	slices.SortFunc(users, func(a, b *domain.User) int { return cmp.Compare(a.ID, b.ID) })

	return users, nil
}
