// Package cache stores rendered page bodies. The content behind a page never
// changes while the process runs, so entries only age out by TTL.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte cache keyed by string
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value; ttl 0 means no expiration
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

const keyPrefix = "portfolio:"

func prefixKey(key string) string {
	return keyPrefix + key
}
