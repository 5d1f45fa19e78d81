package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

const collectionRequests = "requests"

type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

// Create inserts a new item request document.
func (r *RequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, req)
	return err
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.ItemRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var req domain.ItemRequest
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindByRequester returns the user's own requests, newest first.
func (r *RequestRepository) FindByRequester(ctx context.Context, requesterID string, page ports.Page) ([]*domain.ItemRequest, error) {
	return r.find(ctx, bson.M{"requester_id": requesterID}, page)
}

// FindByOtherRequesters returns everyone else's requests, newest first.
func (r *RequestRepository) FindByOtherRequesters(ctx context.Context, requesterID string, page ports.Page) ([]*domain.ItemRequest, error) {
	return r.find(ctx, bson.M{"requester_id": bson.M{"$ne": requesterID}}, page)
}

func (r *RequestRepository) find(ctx context.Context, filter bson.M, page ports.Page) ([]*domain.ItemRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, pageOptions(page).SetSort(bson.D{{Key: "created", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var requests []*domain.ItemRequest
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// EnsureIndexes creates necessary indexes on the requests collection.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "requester_id", Value: 1}, {Key: "created", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
