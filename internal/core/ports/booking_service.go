package ports

import (
	"context"
	"time"

	"github.com/lendly/sharing-system/internal/core/domain"
)

// CreateBookingInput carries the data needed to create a booking. The
// requester becomes the booker.
type CreateBookingInput struct {
	Start  time.Time
	End    time.Time
	ItemID string
}

// BookerRef is the user snapshot embedded in booking responses.
type BookerRef struct {
	ID    string
	Name  string
	Email string
}

// ItemRef is the item snapshot embedded in booking responses.
type ItemRef struct {
	ID          string
	Name        string
	Description string
	Available   bool
	OwnerID     string
	RequestID   string
}

// BookingDetail is the full booking view: the persisted booking joined with
// booker and item snapshots.
type BookingDetail struct {
	ID     string
	Start  time.Time
	End    time.Time
	Status string
	Booker BookerRef
	Item   ItemRef
}

// BookingService defines the booking lifecycle use cases. The now parameter
// on listing operations is captured once per request by the caller so every
// temporal comparison inside one call uses the same instant.
type BookingService interface {
	Create(ctx context.Context, requesterID string, in CreateBookingInput) (*BookingDetail, error)
	Get(ctx context.Context, requesterID, bookingID string) (*BookingDetail, error)
	GetByBooker(ctx context.Context, requesterID string, state domain.BookingState, now time.Time, page Page) ([]*BookingDetail, error)
	GetByOwner(ctx context.Context, requesterID string, state domain.BookingState, now time.Time, page Page) ([]*BookingDetail, error)
	Confirm(ctx context.Context, requesterID, bookingID string, approved bool) (*BookingDetail, error)
}
