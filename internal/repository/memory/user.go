// Package memory provides in-memory implementations of the domain repository
// interfaces, guarded by mutexes so concurrent requests cannot corrupt the
// backing maps. Intended for tests and throwaway environments.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
)

// UserRepository implements domain.UserRepository with an in-memory map.
// Insertion order is preserved for List.
type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.User
	order []string
}

var _ domain.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates an empty in-memory UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}

	user.CreatedAt = time.Now().UTC()
	stored := *user
	r.byID[user.ID] = &stored
	r.order = append(r.order, user.ID)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.byID[id].Email == email {
			copied := *r.byID[id]
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for id, u := range r.byID {
		if id != user.ID && u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}

	existing.Name = user.Name
	existing.Email = user.Email
	existing.PasswordHash = user.PasswordHash
	return nil
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, *r.byID[id])
	}
	return users, nil
}
