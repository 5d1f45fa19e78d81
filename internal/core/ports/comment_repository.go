package ports

import (
	"context"

	"github.com/lendly/sharing-system/internal/core/domain"
)

// CommentRepository defines persistence operations for item comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	// FindByItem returns the item's comments ordered by creation time
	// ascending.
	FindByItem(ctx context.Context, itemID string) ([]*domain.Comment, error)
}
