package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ClientOptions builds the client options for uri; maxPool below 1 keeps the
// driver default.
func ClientOptions(uri string, maxPool int) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetAppName("space-portfolio").
		SetServerSelectionTimeout(10 * time.Second)
	if maxPool > 0 {
		opts.SetMaxPoolSize(uint64(maxPool))
	}
	return opts
}

// Connect opens a MongoDB client and performs a Ping to ensure connectivity.
func Connect(ctx context.Context, uri string, maxPool int) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, ClientOptions(uri, maxPool))
	if err != nil {
		return nil, fmt.Errorf("open mongo client: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}
