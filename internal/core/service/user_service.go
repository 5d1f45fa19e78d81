package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

// UserCache abstracts the read-through cache in front of the user directory
// (Redis). A miss returns (nil, nil); cache faults are soft failures.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, u *domain.User) error
	Invalidate(ctx context.Context, id string) error
}

// UserService implements the user directory use cases.
type UserService struct {
	users ports.UserRepository
	cache UserCache
	log   zerolog.Logger
}

// NewUserService returns a UserService. cache may be nil to disable caching.
func NewUserService(users ports.UserRepository, cache UserCache, log zerolog.Logger) *UserService {
	return &UserService{users: users, cache: cache, log: log}
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	u := &domain.User{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.BadRequestf("Email %s already in use", in.Email)
		}
		return nil, err
	}

	s.log.Info().Str("user_id", u.ID).Msg("user registered")
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("user cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	u, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, u); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("user cache write failed")
		}
	}
	return u, nil
}

func (s *UserService) GetAll(ctx context.Context, page ports.Page) ([]*domain.User, error) {
	return s.users.FindAll(ctx, page)
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if err := s.users.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.BadRequestf("Email %s already in use", u.Email)
		}
		return nil, err
	}

	s.invalidate(ctx, id)
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *UserService) find(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("User Id=%s", id)
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("user cache invalidation failed")
	}
}
