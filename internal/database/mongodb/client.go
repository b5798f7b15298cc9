package mongodb

import (
	"context"
	"fmt"
	"time"

	"job-tracker/internal/config"
	"job-tracker/internal/database"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const ColJobs = "jobs"

type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		timeout := time.Duration(cfg.ConnectTimeout) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	c := &Client{client: client, db: client.Database(cfg.Name)}
	if err := c.migrate(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return c, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("mongodb: nil client")
	}
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

func (c *Client) Collection(name string) *mongo.Collection {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Collection(name)
}

// migrate creates query-support indexes. The url index is deliberately
// non-unique: duplicate detection stays a request-time check.
func (c *Client) migrate(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		ColJobs: {
			{Keys: bson.D{{Key: "url", Value: 1}}},
			{Keys: bson.D{{Key: "date_saved", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "platform", Value: 1}}},
		},
	}

	for col, models := range indexes {
		if _, err := c.db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongodb: migrate %s indexes: %w", col, err)
		}
	}
	return nil
}
