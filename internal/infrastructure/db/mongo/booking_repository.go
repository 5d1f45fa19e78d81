package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

// Create inserts a new booking document.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, b)
	return err
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Booking
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) FindByBooker(ctx context.Context, bookerID string, seg domain.Segment, now time.Time, page ports.Page) ([]*domain.Booking, error) {
	return r.findSegment(ctx, bson.M{"booker_id": bookerID}, seg, now, page)
}

func (r *BookingRepository) FindByOwner(ctx context.Context, ownerID string, seg domain.Segment, now time.Time, page ports.Page) ([]*domain.Booking, error) {
	return r.findSegment(ctx, bson.M{"item_owner_id": ownerID}, seg, now, page)
}

// findSegment runs one paged query for every state filter: the segment is
// translated into filter clauses and the sort is uniformly start descending,
// matching domain.Segment.Matches.
func (r *BookingRepository) findSegment(ctx context.Context, filter bson.M, seg domain.Segment, now time.Time, page ports.Page) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if seg.Status != "" {
		filter["status"] = seg.Status
	}
	switch seg.Temporal {
	case domain.TemporalCurrent:
		filter["start"] = bson.M{"$lt": now}
		filter["end"] = bson.M{"$gt": now}
	case domain.TemporalPast:
		filter["end"] = bson.M{"$lt": now}
	case domain.TemporalFuture:
		filter["start"] = bson.M{"$gt": now}
	}

	cur, err := r.col.Find(ctx, filter, pageOptions(page).SetSort(bson.D{{Key: "start", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []*domain.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatusFromWaiting atomically moves a booking out of WAITING. The
// filter includes the current status, so of two concurrent writers exactly one
// matches; the loser gets domain.ErrAlreadyDecided, a missing id gets
// domain.ErrNotFound.
func (r *BookingRepository) UpdateStatusFromWaiting(ctx context.Context, id string, next domain.BookingStatus) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Booking
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": domain.StatusWaiting},
		bson.M{"$set": bson.M{"status": next}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// No match: either the booking is gone or it is no longer WAITING.
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, domain.ErrAlreadyDecided
}

// FindLastForItem returns the item's most recently finished booking.
func (r *BookingRepository) FindLastForItem(ctx context.Context, itemID string, now time.Time) (*domain.Booking, error) {
	return r.findAdjacent(ctx,
		bson.M{"item_id": itemID, "end": bson.M{"$lt": now}},
		bson.D{{Key: "end", Value: -1}},
	)
}

// FindNextForItem returns the item's soonest upcoming booking.
func (r *BookingRepository) FindNextForItem(ctx context.Context, itemID string, now time.Time) (*domain.Booking, error) {
	return r.findAdjacent(ctx,
		bson.M{"item_id": itemID, "start": bson.M{"$gt": now}},
		bson.D{{Key: "start", Value: 1}},
	)
}

func (r *BookingRepository) findAdjacent(ctx context.Context, filter bson.M, sort bson.D) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Booking
	err := r.col.FindOne(ctx, filter, options.FindOne().SetSort(sort)).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// HasFinishedBooking reports whether the booker has any booking of the item
// that ended before now.
func (r *BookingRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID string, now time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{
		"booker_id": bookerID,
		"item_id":   itemID,
		"end":       bson.M{"$lt": now},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// EnsureIndexes creates necessary indexes on the bookings collection.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "booker_id", Value: 1}, {Key: "start", Value: -1}}},
		{Keys: bson.D{{Key: "item_owner_id", Value: 1}, {Key: "start", Value: -1}}},
		{Keys: bson.D{{Key: "item_id", Value: 1}, {Key: "end", Value: -1}}},
		{Keys: bson.D{{Key: "item_id", Value: 1}, {Key: "start", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
