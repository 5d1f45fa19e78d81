package ports

import (
	"context"
	"time"

	"github.com/lendly/sharing-system/internal/core/domain"
)

// CreateItemInput carries the data needed to list an item for lending.
type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	// RequestID, when set, links the item to the request it answers.
	RequestID string
}

// UpdateItemInput is a partial update: nil fields are left untouched.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

// BookingSlot is the compact booking view shown to an item's owner.
type BookingSlot struct {
	ID       string
	Start    time.Time
	End      time.Time
	BookerID string
	Status   string
}

// ItemDetail is the full item view: the item, its comments, and — for the
// owner only — the adjacent bookings.
type ItemDetail struct {
	Item     domain.Item
	Comments []*domain.Comment
	// LastBooking and NextBooking are populated only when the requester owns
	// the item.
	LastBooking *BookingSlot
	NextBooking *BookingSlot
}

// CreateCommentInput carries the text of a comment on an item.
type CreateCommentInput struct {
	Text string
}

// ItemService defines the item catalog use cases.
type ItemService interface {
	Create(ctx context.Context, ownerID string, in CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, requesterID, itemID string, now time.Time) (*ItemDetail, error)
	GetUserItems(ctx context.Context, ownerID string, now time.Time, page Page) ([]*ItemDetail, error)
	Search(ctx context.Context, text string, page Page) ([]*domain.Item, error)
	Update(ctx context.Context, ownerID, itemID string, in UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, ownerID, itemID string) error
	// CreateComment adds a comment by a user who has a finished booking of
	// the item.
	CreateComment(ctx context.Context, authorID, itemID string, in CreateCommentInput, now time.Time) (*domain.Comment, error)
}
