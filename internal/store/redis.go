package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var compareAndDeleteScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
else
    return 0
end
`)

// RedisStore implements Store on Redis: logs are streams, records are hashes
// and conditional sets are SET NX PX.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix prepends prefix to every key the store touches.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore returns a RedisStore using the provided client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the physical Redis key for a logical key.
func (s *RedisStore) Key(key string) string {
	return s.prefix + key
}

// AppendLog implements Store.AppendLog with XADD.
func (s *RedisStore) AppendLog(ctx context.Context, key string, fields map[string]string) (string, error) {
	id, err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.Key(key),
		Values: toAny(fields),
	}).Result()
	if err != nil {
		return "", wrap("append log", err)
	}
	return id, nil
}

// GetFields implements Store.GetFields with HMGET.
func (s *RedisStore) GetFields(ctx context.Context, key string, names ...string) (map[string]string, error) {
	values, err := s.client.HMGet(ctx, s.Key(key), names...).Result()
	if err != nil {
		return nil, wrap("get fields", err)
	}
	fields := make(map[string]string, len(names))
	for i, v := range values {
		if str, ok := v.(string); ok {
			fields[names[i]] = str
		}
	}
	return fields, nil
}

// SetFields implements Store.SetFields with HSET.
func (s *RedisStore) SetFields(ctx context.Context, key string, fields map[string]string) error {
	if err := s.client.HSet(ctx, s.Key(key), toAny(fields)).Err(); err != nil {
		return wrap("set fields", err)
	}
	return nil
}

// SetIfAbsent implements Store.SetIfAbsent with SET NX PX.
func (s *RedisStore) SetIfAbsent(ctx context.Context, key, value string, lease time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.Key(key), value, lease).Result()
	if err != nil {
		return false, wrap("set if absent", err)
	}
	return ok, nil
}

// CompareAndDelete implements Store.CompareAndDelete with a Lua script so the
// comparison and the delete cannot interleave with another writer.
func (s *RedisStore) CompareAndDelete(ctx context.Context, key, expected string) (bool, error) {
	n, err := compareAndDeleteScript.Run(ctx, s.client, []string{s.Key(key)}, expected).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, wrap("compare and delete", err)
	}
	return n == 1, nil
}

func toAny(fields map[string]string) map[string]any {
	values := make(map[string]any, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	return values
}

// wrap classifies err. Redis error replies are returned as is; anything else
// (network, closed client, timeouts) means the store could not be reached.
func wrap(op string, err error) error {
	var replyErr redis.Error
	if errors.As(err, &replyErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
