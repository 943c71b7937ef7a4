package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-auth-backend/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert would violate email uniqueness.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the persistence contract for identity records.
// Implementations must enforce email uniqueness atomically at write time;
// callers do not pre-check.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	DeleteAll(ctx context.Context) (int64, error)
}
