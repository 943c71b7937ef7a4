package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-backend/internal/domain/entity"
	repo "github.com/oksasatya/go-auth-backend/internal/domain/repository"
	"github.com/oksasatya/go-auth-backend/pkg/helpers"
)

// Sentinel errors callers match with errors.Is. Anything else coming out of
// the service is a storage or internal failure and maps to a 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserInactive       = errors.New("user inactive")
)

// IdentityCache caches identity summaries between token validation requests.
// Implementations must be best-effort: a miss or failure falls through to
// the repository.
type IdentityCache interface {
	Get(ctx context.Context, id int64) (entity.Summary, bool)
	Set(ctx context.Context, s entity.Summary)
	InvalidateAll(ctx context.Context)
}

// Service implements signup, login and token validation. It holds no
// mutable state beyond the injected collaborators, so concurrent requests
// need no locking here; the repository is the only shared mutable resource.
type Service struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Cache  IdentityCache
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, jwt *helpers.JWTManager, cache IdentityCache, logger *logrus.Logger) *Service {
	return &Service{Repo: r, JWT: jwt, Cache: cache, Logger: logger}
}

// Signup hashes the password and persists a new active identity.
// Duplicate emails surface as ErrEmailTaken; the store enforces uniqueness
// atomically, so concurrent signups for one email cannot both succeed.
func (s *Service) Signup(ctx context.Context, email, password string) (entity.Summary, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return entity.Summary{}, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return entity.Summary{}, ErrEmailTaken
		}
		return entity.Summary{}, fmt.Errorf("create user: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	}
	return u.Summarize(), nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password are indistinguishable to the caller; the unknown-email
// path still pays for one bcrypt comparison so timing does not give away
// which emails are registered.
func (s *Service) Login(ctx context.Context, email, password string) (string, time.Time, entity.Summary, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			helpers.BurnCompare(password)
			return "", time.Time{}, entity.Summary{}, ErrInvalidCredentials
		}
		return "", time.Time{}, entity.Summary{}, fmt.Errorf("load user: %w", err)
	}

	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", time.Time{}, entity.Summary{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.GenerateToken(u.ID, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return "", time.Time{}, entity.Summary{}, fmt.Errorf("generate token: %w", err)
	}

	return token, exp, u.Summarize(), nil
}

// Validate checks the token's signature and expiry, then resolves its
// subject against the store. A structurally valid token whose subject was
// deleted yields ErrUserNotFound; a deactivated subject yields
// ErrUserInactive.
func (s *Service) Validate(ctx context.Context, token string) (entity.Summary, error) {
	claims, err := s.JWT.ParseToken(token)
	if err != nil {
		return entity.Summary{}, ErrInvalidToken
	}
	return s.GetIdentity(ctx, claims.UserID)
}

// GetIdentity resolves an identity summary by id, consulting the cache
// first when one is configured.
func (s *Service) GetIdentity(ctx context.Context, id int64) (entity.Summary, error) {
	if s.Cache != nil {
		if sum, ok := s.Cache.Get(ctx, id); ok {
			if !sum.IsActive {
				return entity.Summary{}, ErrUserInactive
			}
			return sum, nil
		}
	}

	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.Summary{}, ErrUserNotFound
		}
		return entity.Summary{}, fmt.Errorf("load user: %w", err)
	}

	sum := u.Summarize()
	if s.Cache != nil {
		s.Cache.Set(ctx, sum)
	}
	if !sum.IsActive {
		return entity.Summary{}, ErrUserInactive
	}
	return sum, nil
}

// ResetAll deletes every identity record and drops the cache generation.
// Callers are responsible for authorization; the router mounts this behind
// the admin guard.
func (s *Service) ResetAll(ctx context.Context) (int64, error) {
	n, err := s.Repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete users: %w", err)
	}
	if s.Cache != nil {
		s.Cache.InvalidateAll(ctx)
	}
	if s.Logger != nil {
		s.Logger.WithField("deleted", n).Warn("all identities deleted")
	}
	return n, nil
}
