package cache

import (
	"context"
	"strconv"
	"time"
)

// Cache stores JSON encoded values under string keys.
type Cache interface {
	// Get decodes the value stored under key into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

const (
	ProductIDPrefix  = "product:id"
	ProductSKUPrefix = "product:sku"
)

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

func ProductIDKey(id int64) string {
	return Key(ProductIDPrefix, strconv.FormatInt(id, 10))
}

func ProductSKUKey(sku string) string {
	return Key(ProductSKUPrefix, sku)
}

type noopCache struct{}

// NewNoopCache returns a Cache that never stores anything, used when redis is not configured.
func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, ...string) error { return nil }
func (noopCache) Ping(context.Context) error { return nil }
func (noopCache) Close() error { return nil }
