package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/cache"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/config"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultTTL = 10 * time.Minute

func newProductCache(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	return cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: defaultTTL}), mock
}

func cachedProduct() *models.Product {
	return &models.Product{
		ID:          7,
		SKU:         "sku7",
		Name:        "p7",
		Created:     models.NewDate(2023, time.November, 30),
		LastUpdated: models.NewDate(2024, time.January, 2),
	}
}

func TestGetProduct(t *testing.T) {
	product := cachedProduct()
	stored, err := json.Marshal(product)
	require.NoError(t, err)

	t.Run("Success - Hit by id keeps calendar dates", func(t *testing.T) {
		// Arrange
		productCache, mock := newProductCache(t)
		mock.ExpectGet("product:id:7").SetVal(string(stored))

		// Act
		var got models.Product
		found, err := productCache.Get(t.Context(), cache.ProductIDKey(7), &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(7), got.ID)
		assert.True(t, got.Equal(product))
		assert.Equal(t, "2023-11-30", got.Created.String())
		assert.Equal(t, "2024-01-02", got.LastUpdated.String())
	})

	t.Run("Success - Miss leaves destination untouched", func(t *testing.T) {
		// Arrange
		productCache, mock := newProductCache(t)
		mock.ExpectGet("product:sku:sku7").SetErr(redis.Nil)

		// Act
		var got models.Product
		found, err := productCache.Get(t.Context(), cache.ProductSKUKey("sku7"), &got)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, got.ID)
	})

	t.Run("Failure - Connection error is wrapped", func(t *testing.T) {
		// Arrange
		productCache, mock := newProductCache(t)
		connErr := errors.New("dial tcp: connection refused")
		mock.ExpectGet("product:id:7").SetErr(connErr)

		// Act
		var got models.Product
		found, err := productCache.Get(t.Context(), cache.ProductIDKey(7), &got)

		// Assert
		require.ErrorIs(t, err, connErr)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "product:id:7")
	})

	t.Run("Failure - Stored date is not a calendar day", func(t *testing.T) {
		// Arrange
		productCache, mock := newProductCache(t)
		mock.ExpectGet("product:id:7").SetVal(`{"productId":7,"productSku":"sku7","productCreated":"30/11/2023"}`)

		// Act
		var got models.Product
		found, err := productCache.Get(t.Context(), cache.ProductIDKey(7), &got)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "failed to unmarshal cache data")
	})
}

func TestSetProduct(t *testing.T) {
	product := cachedProduct()
	stored, err := json.Marshal(product)
	require.NoError(t, err)

	tests := []struct {
		name    string
		ttl     time.Duration
		wantTTL time.Duration
	}{
		{name: "Success - Explicit ttl", ttl: time.Minute, wantTTL: time.Minute},
		{name: "Success - Zero ttl uses default", ttl: 0, wantTTL: defaultTTL},
		{name: "Success - Negative ttl uses default", ttl: -time.Second, wantTTL: defaultTTL},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			productCache, mock := newProductCache(t)
			mock.ExpectSet("product:sku:sku7", stored, tc.wantTTL).SetVal("OK")

			// Act
			err := productCache.Set(t.Context(), cache.ProductSKUKey("sku7"), product, tc.ttl)

			// Assert
			require.NoError(t, err)
		})
	}

	t.Run("Failure - Value cannot be encoded", func(t *testing.T) {
		// Arrange
		productCache, _ := newProductCache(t)

		// Act
		err := productCache.Set(t.Context(), cache.ProductIDKey(7), func() {}, time.Minute)

		// Assert
		var typeErr *json.UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr)
	})

	t.Run("Failure - Redis rejects the write", func(t *testing.T) {
		// Arrange
		productCache, mock := newProductCache(t)
		mock.ExpectSet("product:id:7", stored, defaultTTL).SetErr(errors.New("OOM command not allowed"))

		// Act
		err := productCache.Set(t.Context(), cache.ProductIDKey(7), product, 0)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set key product:id:7")
	})
}

func TestEvictProduct(t *testing.T) {
	t.Run("Success - Both lookup keys removed together", func(t *testing.T) {
		// Arrange
		productCache, mock := newProductCache(t)
		mock.ExpectDel("product:id:7", "product:sku:sku7").SetVal(2)

		// Act
		err := productCache.Delete(t.Context(), cache.ProductIDKey(7), cache.ProductSKUKey("sku7"))

		// Assert
		require.NoError(t, err)
	})

	t.Run("Success - Nothing to remove skips redis", func(t *testing.T) {
		// Arrange
		productCache, _ := newProductCache(t)

		// Act
		err := productCache.Delete(t.Context())

		// Assert
		require.NoError(t, err)
	})

	t.Run("Failure - Redis error is wrapped", func(t *testing.T) {
		// Arrange
		productCache, mock := newProductCache(t)
		delErr := errors.New("READONLY replica")
		mock.ExpectDel("product:id:7").SetErr(delErr)

		// Act
		err := productCache.Delete(t.Context(), cache.ProductIDKey(7))

		// Assert
		require.ErrorIs(t, err, delErr)
	})
}

func TestPing(t *testing.T) {
	t.Run("Success - PONG", func(t *testing.T) {
		productCache, mock := newProductCache(t)
		mock.ExpectPing().SetVal("PONG")

		assert.NoError(t, productCache.Ping(t.Context()))
	})

	t.Run("Failure - Unreachable", func(t *testing.T) {
		productCache, mock := newProductCache(t)
		mock.ExpectPing().SetErr(redis.ErrClosed)

		assert.ErrorIs(t, productCache.Ping(t.Context()), redis.ErrClosed)
	})
}

func TestProductKeys(t *testing.T) {
	assert.Equal(t, "product:id:42", cache.ProductIDKey(42))
	assert.Equal(t, "product:sku:ABC-1", cache.ProductSKUKey("ABC-1"))
	assert.Equal(t, "category:", cache.Key("category", ""))
}

func TestNoopCache(t *testing.T) {
	ctx := t.Context()
	noop := cache.NewNoopCache()

	var got models.Product
	found, err := noop.Get(ctx, cache.ProductIDKey(1), &got)

	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, noop.Set(ctx, cache.ProductIDKey(1), cachedProduct(), time.Minute))
	assert.NoError(t, noop.Delete(ctx, cache.ProductIDKey(1)))
	assert.NoError(t, noop.Ping(ctx))
	assert.NoError(t, noop.Close())
}
