package ports

import (
	"context"

	"github.com/lendly/sharing-system/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
// Create and Update return domain.ErrDuplicateEmail on a unique-email
// violation.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context, page Page) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}
