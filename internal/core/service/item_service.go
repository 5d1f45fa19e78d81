package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

// ItemService implements the item catalog use cases, including the comment
// rule: only users with a finished booking of an item may comment on it.
type ItemService struct {
	items    ports.ItemRepository
	bookings ports.BookingRepository
	users    ports.UserRepository
	comments ports.CommentRepository
	requests ports.RequestRepository
	log      zerolog.Logger
}

func NewItemService(
	items ports.ItemRepository,
	bookings ports.BookingRepository,
	users ports.UserRepository,
	comments ports.CommentRepository,
	requests ports.RequestRepository,
	log zerolog.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		bookings: bookings,
		users:    users,
		comments: comments,
		requests: requests,
		log:      log,
	}
}

func (s *ItemService) Create(ctx context.Context, ownerID string, in ports.CreateItemInput) (*domain.Item, error) {
	if _, err := s.findUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if in.RequestID != "" {
		if _, err := s.requests.FindByID(ctx, in.RequestID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NotFoundf("Request Id=%s", in.RequestID)
			}
			return nil, err
		}
	}

	i := &domain.Item{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Available:   in.Available,
		OwnerID:     ownerID,
		RequestID:   in.RequestID,
	}
	if err := s.items.Create(ctx, i); err != nil {
		return nil, err
	}

	s.log.Info().Str("item_id", i.ID).Str("owner_id", ownerID).Msg("item listed")
	return i, nil
}

// Get returns the item with its comments. The owner additionally sees the
// item's last finished and next upcoming bookings.
func (s *ItemService) Get(ctx context.Context, requesterID, itemID string, now time.Time) (*ports.ItemDetail, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	detail := &ports.ItemDetail{Item: *item}
	if requesterID == item.OwnerID {
		detail.LastBooking, detail.NextBooking, err = s.adjacentBookings(ctx, itemID, now)
		if err != nil {
			return nil, err
		}
	}

	comments, err := s.comments.FindByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	detail.Comments = comments

	return detail, nil
}

// GetUserItems lists the owner's items with their adjacent bookings.
func (s *ItemService) GetUserItems(ctx context.Context, ownerID string, now time.Time, page ports.Page) ([]*ports.ItemDetail, error) {
	if _, err := s.findUser(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.items.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}

	out := make([]*ports.ItemDetail, 0, len(items))
	for _, item := range items {
		detail := &ports.ItemDetail{Item: *item}
		detail.LastBooking, detail.NextBooking, err = s.adjacentBookings(ctx, item.ID, now)
		if err != nil {
			return nil, err
		}
		comments, err := s.comments.FindByItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		detail.Comments = comments
		out = append(out, detail)
	}
	return out, nil
}

// Search returns available items matching the text. Blank text yields an
// empty result rather than the whole catalog.
func (s *ItemService) Search(ctx context.Context, text string, page ports.Page) ([]*domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*domain.Item{}, nil
	}
	return s.items.Search(ctx, text, page)
}

func (s *ItemService) Update(ctx context.Context, ownerID, itemID string, in ports.UpdateItemInput) (*domain.Item, error) {
	if _, err := s.findUser(ctx, ownerID); err != nil {
		return nil, err
	}
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ownerID, item); err != nil {
		return nil, err
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, ownerID, itemID string) error {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.requireOwner(ownerID, item); err != nil {
		return err
	}
	return s.items.Delete(ctx, itemID)
}

// CreateComment adds a comment on the item, provided the author has a
// booking of it that finished before now.
func (s *ItemService) CreateComment(ctx context.Context, authorID, itemID string, in ports.CreateCommentInput, now time.Time) (*domain.Comment, error) {
	author, err := s.findUser(ctx, authorID)
	if err != nil {
		return nil, err
	}
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	used, err := s.bookings.HasFinishedBooking(ctx, authorID, item.ID, now)
	if err != nil {
		return nil, err
	}
	if !used {
		return nil, domain.BadRequestf("User id=%s did not use item id=%s", authorID, item.ID)
	}

	c := &domain.Comment{
		ID:         uuid.NewString(),
		Text:       in.Text,
		ItemID:     item.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    now,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ItemService) adjacentBookings(ctx context.Context, itemID string, now time.Time) (last, next *ports.BookingSlot, err error) {
	lastBooking, err := s.bookings.FindLastForItem(ctx, itemID, now)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}
	nextBooking, err := s.bookings.FindNextForItem(ctx, itemID, now)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}
	return toSlot(lastBooking), toSlot(nextBooking), nil
}

func toSlot(b *domain.Booking) *ports.BookingSlot {
	if b == nil {
		return nil
	}
	return &ports.BookingSlot{
		ID:       b.ID,
		Start:    b.Start,
		End:      b.End,
		BookerID: b.BookerID,
		Status:   string(b.Status),
	}
}

func (s *ItemService) requireOwner(userID string, item *domain.Item) error {
	return authorizeOrNotFound(item.OwnerID == userID,
		"User id=%s is not owner of item %s", userID, item.ID)
}

func (s *ItemService) findUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("User Id=%s", id)
		}
		return nil, err
	}
	return u, nil
}

func (s *ItemService) findItem(ctx context.Context, id string) (*domain.Item, error) {
	i, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("Item Id=%s", id)
		}
		return nil, err
	}
	return i, nil
}
