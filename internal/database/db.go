package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// DB is the process-wide handle to the document store. It is created once at
// startup and shared by every repository.
type DB interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	Collection(name string) *mongo.Collection
}
