package ports

import (
	"context"

	"github.com/lendly/sharing-system/internal/core/domain"
)

// CreateUserInput carries the data needed to register a user.
type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput is a partial update: nil fields are left untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserService defines the user directory use cases.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context, page Page) ([]*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
