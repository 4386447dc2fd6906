package testhelpers

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// TestRedis is an in-process Redis server with a connected client.
type TestRedis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewTestRedis starts a miniredis server for the duration of the test.
// The client and server are closed on test cleanup.
func NewTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %s", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		mr.Close()
		t.Fatalf("failed to ping miniredis: %s", pingErr)
	}

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return &TestRedis{Server: mr, Client: client}
}
