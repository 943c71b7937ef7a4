// Package memory provides a mutex-guarded in-memory UserRepository.
// It backs tests and dependency-free local runs (DB_DRIVER=memory).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/go-auth-backend/internal/domain/entity"
	"github.com/oksasatya/go-auth-backend/internal/domain/repository"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[int64]*entity.User
	byEmail map[string]int64
	nextID  int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[int64]*entity.User),
		byEmail: make(map[string]int64),
		nextID:  1,
	}
}

// Create assigns the next id and stores a copy of u. The uniqueness check
// and insert run under one lock, matching the atomicity the postgres
// constraint gives the real store.
func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return repository.ErrDuplicateEmail
	}

	now := time.Now()
	u.ID = r.nextID
	u.CreatedAt = now
	u.UpdatedAt = now
	r.nextID++

	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *UserRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.byID))
	r.byID = make(map[int64]*entity.User)
	r.byEmail = make(map[string]int64)
	return n, nil
}

// Len reports the number of stored records. Test helper.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Deactivate flips is_active off for an existing user. Test helper.
func (r *UserRepository) Deactivate(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		u.IsActive = false
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
