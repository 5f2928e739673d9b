package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
}

// Service is a read-through directory of users. Entries expire after ttl, so a
// capability revoked in the users table stops working within that window.
type Service struct {
	repo  Repository
	cache *expirable.LRU[uuid.UUID, *User]
}

func NewService(repo Repository, cacheSize int, ttl time.Duration) (*Service, error) {
	if cacheSize <= 0 {
		return nil, fmt.Errorf("creating user cache: size must be positive, got %d", cacheSize)
	}

	if ttl <= 0 {
		return nil, fmt.Errorf("creating user cache: ttl must be positive, got %s", ttl)
	}

	return &Service{repo: repo, cache: expirable.NewLRU[uuid.UUID, *User](cacheSize, nil, ttl)}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	if u, ok := s.cache.Get(id); ok {
		return u.clone(), nil
	}

	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Add(id, u.clone())

	return u, nil
}

// Require loads the user and fails with ErrForbidden unless they hold the capability.
func (s *Service) Require(ctx context.Context, id uuid.UUID, c Capability) (*User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !u.Can(c) {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, c)
	}

	return u, nil
}
