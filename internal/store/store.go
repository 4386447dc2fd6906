// Package store defines the shared key-value, append-log and conditional-set
// primitives the bid engine coordinates through, plus a Redis implementation.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when the backing store cannot be reached.
var ErrUnavailable = errors.New("store unavailable")

// Store is the only boundary the bid engine depends on. All values cross it
// as text; callers own the encoding of numbers and timestamps.
type Store interface {
	// AppendLog appends one entry to the log stream at key and returns its id.
	AppendLog(ctx context.Context, key string, fields map[string]string) (string, error)

	// GetFields reads the named fields of the record at key. Absent fields are
	// omitted from the result, so an absent record yields an empty map.
	GetFields(ctx context.Context, key string, names ...string) (map[string]string, error)

	// SetFields overwrites the given fields of the record at key.
	SetFields(ctx context.Context, key string, fields map[string]string) error

	// SetIfAbsent stores value at key with the given lease only if key does
	// not exist. It reports whether the value was stored.
	SetIfAbsent(ctx context.Context, key, value string, lease time.Duration) (bool, error)

	// CompareAndDelete atomically deletes key only if it holds expected.
	// It reports whether the key was deleted.
	CompareAndDelete(ctx context.Context, key, expected string) (bool, error)
}
