package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

const collectionItems = "items"

type ItemRepository struct {
	col *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{col: db.Collection(collectionItems)}
}

// Create inserts a new item document.
func (r *ItemRepository) Create(ctx context.Context, i *domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, i)
	return err
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var i domain.Item
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&i)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *ItemRepository) FindByOwner(ctx context.Context, ownerID string, page ports.Page) ([]*domain.Item, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID}, page)
}

func (r *ItemRepository) FindByRequest(ctx context.Context, requestID string) ([]*domain.Item, error) {
	return r.find(ctx, bson.M{"request_id": requestID}, ports.Page{})
}

// Search matches the text case-insensitively against name and description,
// restricted to available items. Blank-text handling is the caller's concern.
func (r *ItemRepository) Search(ctx context.Context, text string, page ports.Page) ([]*domain.Item, error) {
	pattern := primitive.Regex{Pattern: regexQuoteMeta(text), Options: "i"}
	filter := bson.M{
		"available": true,
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		},
	}
	return r.find(ctx, filter, page)
}

func (r *ItemRepository) find(ctx context.Context, filter bson.M, page ports.Page) ([]*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, pageOptions(page).SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []*domain.Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the item's mutable fields.
func (r *ItemRepository) Update(ctx context.Context, i *domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": i.ID},
		bson.M{"$set": bson.M{
			"name":        i.Name,
			"description": i.Description,
			"available":   i.Available,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// EnsureIndexes creates necessary indexes on the items collection.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
