package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ClientOptions selects the Redis server and credentials
type ClientOptions struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// NewClient connects to Redis and checks the connection with a ping. The
// caller owns the client and closes it.
func NewClient(ctx context.Context, opts ClientOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("unable to ping redis at %s: %w", opts.Addr, err)
	}
	return client, nil
}
