package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lendly/sharing-system/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the indexes of every collection. Called once at
// startup after Connect.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, r := range []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		NewUserRepository(db),
		NewItemRepository(db),
		NewBookingRepository(db),
		NewCommentRepository(db),
		NewRequestRepository(db),
	} {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

// pageOptions translates a ports.Page into find options. From is a literal
// record offset, not a page index.
func pageOptions(page ports.Page) *options.FindOptions {
	opts := options.Find()
	if page.Offset() > 0 {
		opts.SetSkip(int64(page.Offset()))
	}
	if page.Limit() > 0 {
		opts.SetLimit(int64(page.Limit()))
	}
	return opts
}

// regexQuoteMeta escapes user-supplied search text so it is matched literally
// inside a Mongo regex.
func regexQuoteMeta(text string) string {
	return regexp.QuoteMeta(text)
}
