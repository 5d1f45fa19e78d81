package ports

import (
	"context"

	"github.com/lendly/sharing-system/internal/core/domain"
)

// CreateRequestInput carries the description of a wanted item.
type CreateRequestInput struct {
	Description string
}

// RequestDetail is a request joined with the items listed in answer to it.
type RequestDetail struct {
	Request domain.ItemRequest
	Items   []*domain.Item
}

// RequestService defines the item request use cases.
type RequestService interface {
	Create(ctx context.Context, requesterID string, in CreateRequestInput) (*domain.ItemRequest, error)
	// GetUserRequests lists the requester's own requests with their items.
	GetUserRequests(ctx context.Context, requesterID string, page Page) ([]*RequestDetail, error)
	// GetAllRequests lists other users' requests with their items.
	GetAllRequests(ctx context.Context, requesterID string, page Page) ([]*RequestDetail, error)
	Get(ctx context.Context, requesterID, requestID string) (*RequestDetail, error)
}
