package checkers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultTimeout bounds a single ping.
const DefaultTimeout = time.Second

// PingChecker reports a store healthy when its ping succeeds within Timeout.
type PingChecker struct {
	name    string
	ping    func(ctx context.Context) error
	Timeout time.Duration
}

func NewPingChecker(name string, ping func(ctx context.Context) error) *PingChecker {
	return &PingChecker{name: name, ping: ping, Timeout: DefaultTimeout}
}

func NewPostgresChecker(pool *pgxpool.Pool) *PingChecker {
	return NewPingChecker("postgres", pool.Ping)
}

func NewMongoChecker(client *mongo.Client) *PingChecker {
	return NewPingChecker("mongo", func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})
}

func (c *PingChecker) Name() string { return c.name }

func (c *PingChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	return c.ping(ctx)
}
