package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

// BookingService is the booking lifecycle engine. It is stateless between
// calls: all durable state lives in the booking store, and the confirm
// transition relies on the store's conditional update for atomicity.
type BookingService struct {
	bookings ports.BookingRepository
	items    ports.ItemRepository
	users    ports.UserRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewBookingService returns a BookingService implementation. notifier may be
// nil, in which case lifecycle notices are skipped.
func NewBookingService(
	bookings ports.BookingRepository,
	items ports.ItemRepository,
	users ports.UserRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		notifier: notifier,
		log:      log,
	}
}

// Create validates a booking request against ownership and availability
// rules and persists it with status WAITING. The item's availability flag is
// read, never written: approval does not reserve the item, so overlapping
// approved bookings are possible until the owner flips availability by hand.
func (s *BookingService) Create(ctx context.Context, requesterID string, in ports.CreateBookingInput) (*ports.BookingDetail, error) {
	booker, err := s.findUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	item, err := s.findItem(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}

	// Authorization failure modeled as NotFound so the owner's identity is
	// not confirmed to a disallowed actor.
	if err := authorizeOrNotFound(requesterID != item.OwnerID,
		"User id=%s can not booking item id=%s", requesterID, item.ID); err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, domain.BadRequestf("Item id=%s not available", item.ID)
	}

	b := &domain.Booking{
		ID:          uuid.NewString(),
		Start:       in.Start,
		End:         in.End,
		ItemID:      item.ID,
		BookerID:    requesterID,
		Status:      domain.StatusWaiting,
		ItemOwnerID: item.OwnerID,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		s.log.Error().Err(err).Str("item_id", item.ID).Msg("failed to create booking")
		return nil, err
	}

	s.log.Info().
		Str("booking_id", b.ID).
		Str("item_id", item.ID).
		Str("booker_id", requesterID).
		Msg("booking created")

	if s.notifier != nil {
		s.notifier.Notify(ports.BookingNotice{
			Kind:        ports.NoticeBookingCreated,
			BookingID:   b.ID,
			ItemID:      item.ID,
			RecipientID: item.OwnerID,
		})
	}

	return toDetail(b, booker, item), nil
}

// Get returns a single booking. Only the booker and the item's owner may see
// it; anyone else gets NotFound rather than Forbidden. The booking is looked
// up first, so an unknown booking id reports the booking and not the caller.
func (s *BookingService) Get(ctx context.Context, requesterID, bookingID string) (*ports.BookingDetail, error) {
	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOrNotFound(requesterID == b.BookerID || requesterID == b.ItemOwnerID,
		"User id=%s", requesterID); err != nil {
		return nil, err
	}

	return s.joinDetail(ctx, b)
}

// GetByBooker lists the requester's own bookings segmented by state.
func (s *BookingService) GetByBooker(ctx context.Context, requesterID string, state domain.BookingState, now time.Time, page ports.Page) ([]*ports.BookingDetail, error) {
	if _, err := s.findUser(ctx, requesterID); err != nil {
		return nil, err
	}
	seg, err := domain.SegmentFor(state)
	if err != nil {
		return nil, err
	}

	list, err := s.bookings.FindByBooker(ctx, requesterID, seg, now, page)
	if err != nil {
		return nil, err
	}
	return s.joinDetails(ctx, list)
}

// GetByOwner lists bookings of items the requester owns, segmented by state.
func (s *BookingService) GetByOwner(ctx context.Context, requesterID string, state domain.BookingState, now time.Time, page ports.Page) ([]*ports.BookingDetail, error) {
	if _, err := s.findUser(ctx, requesterID); err != nil {
		return nil, err
	}
	seg, err := domain.SegmentFor(state)
	if err != nil {
		return nil, err
	}

	list, err := s.bookings.FindByOwner(ctx, requesterID, seg, now, page)
	if err != nil {
		return nil, err
	}
	return s.joinDetails(ctx, list)
}

// Confirm moves a WAITING booking to APPROVED or REJECTED. The status check
// runs before the ownership check, so a non-owner probing a decided booking
// learns only that it is decided. The write itself is conditional on the
// stored status still being WAITING: of two concurrent confirms at most one
// commits and the loser fails the same way a late caller would.
func (s *BookingService) Confirm(ctx context.Context, requesterID, bookingID string, approved bool) (*ports.BookingDetail, error) {
	if _, err := s.findUser(ctx, requesterID); err != nil {
		return nil, err
	}
	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	// Consistency guard: the item was resolved at creation time but may have
	// been deleted since.
	item, err := s.findItem(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}

	if b.Status != domain.StatusWaiting {
		return nil, domain.BadRequestf("Booking is checked")
	}
	if err := authorizeOrNotFound(requesterID == item.OwnerID,
		"User id=%s is not owner of item", requesterID); err != nil {
		return nil, err
	}

	next := domain.StatusRejected
	if approved {
		next = domain.StatusApproved
	}

	updated, err := s.bookings.UpdateStatusFromWaiting(ctx, bookingID, next)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyDecided) {
			return nil, domain.BadRequestf("Booking is checked")
		}
		return nil, err
	}

	s.log.Info().
		Str("booking_id", bookingID).
		Str("status", string(next)).
		Msg("booking confirmed")

	kind := ports.NoticeBookingRejected
	if approved {
		kind = ports.NoticeBookingApproved
	}
	if s.notifier != nil {
		s.notifier.Notify(ports.BookingNotice{
			Kind:        kind,
			BookingID:   bookingID,
			ItemID:      item.ID,
			RecipientID: updated.BookerID,
		})
	}

	return s.joinDetail(ctx, updated)
}

// --- lookups -------------------------------------------------------------

func (s *BookingService) findUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("User Id=%s", id)
		}
		return nil, err
	}
	return u, nil
}

func (s *BookingService) findItem(ctx context.Context, id string) (*domain.Item, error) {
	i, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("Item Id=%s", id)
		}
		return nil, err
	}
	return i, nil
}

func (s *BookingService) findBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("Booking Id=%s", id)
		}
		return nil, err
	}
	return b, nil
}

// authorizeOrNotFound converts a failed authorization check into NotFound.
// Keeping the conversion in one place makes a future switch to a dedicated
// Forbidden kind a one-line change.
func authorizeOrNotFound(ok bool, format string, a ...any) error {
	if ok {
		return nil
	}
	return domain.NotFoundf(format, a...)
}

// --- joins ---------------------------------------------------------------

func (s *BookingService) joinDetail(ctx context.Context, b *domain.Booking) (*ports.BookingDetail, error) {
	booker, err := s.findUser(ctx, b.BookerID)
	if err != nil {
		return nil, err
	}
	item, err := s.findItem(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	return toDetail(b, booker, item), nil
}

// joinDetails resolves booker and item snapshots for a page of bookings,
// memoizing lookups since owner listings repeat items and bookers.
func (s *BookingService) joinDetails(ctx context.Context, list []*domain.Booking) ([]*ports.BookingDetail, error) {
	users := make(map[string]*domain.User)
	items := make(map[string]*domain.Item)

	out := make([]*ports.BookingDetail, 0, len(list))
	for _, b := range list {
		booker, ok := users[b.BookerID]
		if !ok {
			u, err := s.findUser(ctx, b.BookerID)
			if err != nil {
				return nil, err
			}
			users[b.BookerID] = u
			booker = u
		}
		item, ok := items[b.ItemID]
		if !ok {
			i, err := s.findItem(ctx, b.ItemID)
			if err != nil {
				return nil, err
			}
			items[b.ItemID] = i
			item = i
		}
		out = append(out, toDetail(b, booker, item))
	}
	return out, nil
}

func toDetail(b *domain.Booking, booker *domain.User, item *domain.Item) *ports.BookingDetail {
	return &ports.BookingDetail{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Booker: ports.BookerRef{
			ID:    booker.ID,
			Name:  booker.Name,
			Email: booker.Email,
		},
		Item: ports.ItemRef{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Available:   item.Available,
			OwnerID:     item.OwnerID,
			RequestID:   item.RequestID,
		},
	}
}
