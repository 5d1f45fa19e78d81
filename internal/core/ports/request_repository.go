package ports

import (
	"context"

	"github.com/lendly/sharing-system/internal/core/domain"
)

// RequestRepository defines persistence operations for item requests.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.ItemRequest) error
	FindByID(ctx context.Context, id string) (*domain.ItemRequest, error)
	// FindByRequester returns the user's own requests, newest first.
	FindByRequester(ctx context.Context, requesterID string, page Page) ([]*domain.ItemRequest, error)
	// FindByOtherRequesters returns everyone else's requests, newest first.
	FindByOtherRequesters(ctx context.Context, requesterID string, page Page) ([]*domain.ItemRequest, error)
}
