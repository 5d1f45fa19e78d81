package ports

import (
	"context"
	"time"

	"github.com/lendly/sharing-system/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings. All listing
// methods return results ordered by start descending and page with the
// literal offset from Page.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// FindByBooker returns the booker's bookings inside the segment,
	// evaluated against now.
	FindByBooker(ctx context.Context, bookerID string, seg domain.Segment, now time.Time, page Page) ([]*domain.Booking, error)
	// FindByOwner is the owner-side equivalent, filtering on the item owner.
	FindByOwner(ctx context.Context, ownerID string, seg domain.Segment, now time.Time, page Page) ([]*domain.Booking, error)
	// UpdateStatusFromWaiting atomically moves a WAITING booking to next.
	// Returns domain.ErrAlreadyDecided when the booking exists but is no
	// longer WAITING (a concurrent confirm won), domain.ErrNotFound when it
	// does not exist at all.
	UpdateStatusFromWaiting(ctx context.Context, id string, next domain.BookingStatus) (*domain.Booking, error)
	// FindLastForItem returns the item's most recently finished booking
	// (end < now, latest end first), or domain.ErrNotFound.
	FindLastForItem(ctx context.Context, itemID string, now time.Time) (*domain.Booking, error)
	// FindNextForItem returns the item's nearest upcoming booking
	// (start > now, earliest start first), or domain.ErrNotFound.
	FindNextForItem(ctx context.Context, itemID string, now time.Time) (*domain.Booking, error)
	// HasFinishedBooking reports whether the booker has a booking of the
	// item that ended before now.
	HasFinishedBooking(ctx context.Context, bookerID, itemID string, now time.Time) (bool, error)
}
