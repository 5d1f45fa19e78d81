package ports

import (
	"context"

	"github.com/lendly/sharing-system/internal/core/domain"
)

// ItemRepository defines persistence operations for the item catalog.
type ItemRepository interface {
	Create(ctx context.Context, i *domain.Item) error
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	// FindByOwner returns the owner's items ordered by id ascending.
	FindByOwner(ctx context.Context, ownerID string, page Page) ([]*domain.Item, error)
	// FindByRequest returns the items created in answer to a request,
	// ordered by id ascending.
	FindByRequest(ctx context.Context, requestID string) ([]*domain.Item, error)
	// Search returns available items whose name or description contains the
	// text, case-insensitively.
	Search(ctx context.Context, text string, page Page) ([]*domain.Item, error)
	Update(ctx context.Context, i *domain.Item) error
	Delete(ctx context.Context, id string) error
}
