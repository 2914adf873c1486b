package adapter

import (
	"context"
	"testing"
	"time"

	"cargo-tracker/internal/core/cache"
	"cargo-tracker/internal/features/orders/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrackingCache(t *testing.T, ttl time.Duration) (*RedisTrackingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return NewRedisTrackingCache(c, ttl), mr
}

func TestRedisTrackingCache_RoundTrip(t *testing.T) {
	tc, _ := newTrackingCache(t, time.Minute)
	ctx := context.Background()

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	order := &domain.Order{
		ID:        "6f1c9c4e-3a57-4c1b-9d7e-0d4b3f1a2c11",
		OrderID:   "ORD-1",
		PackageID: "PKG-1",
		Status:    domain.OrderStatusInUB,
		CreatedAt: at,
		StatusHistory: []domain.StatusHistory{
			{ID: "h1", Status: domain.OrderStatusInUB, Timestamp: at},
		},
		OrderDetails: &domain.OrderDetails{ID: "d1", PriceRMB: decimal.RequireFromString("12.50")},
	}

	got, err := tc.Get(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, tc.Set(ctx, "ORD-1", order))

	got, err = tc.Get(ctx, "ORD-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, domain.OrderStatusInUB, got.Status)
	assert.True(t, at.Equal(got.StatusHistory[0].Timestamp))
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.OrderDetails.PriceRMB))
}

func TestRedisTrackingCache_Invalidate(t *testing.T) {
	tc, mr := newTrackingCache(t, time.Minute)
	ctx := context.Background()

	order := &domain.Order{ID: "x", OrderID: "ORD-1", PackageID: "PKG-1"}
	require.NoError(t, tc.Set(ctx, "ORD-1", order))
	require.NoError(t, tc.Set(ctx, "PKG-1", order))

	require.NoError(t, tc.Invalidate(ctx, "ORD-1", "PKG-1", "ORD-1", ""))
	assert.False(t, mr.Exists(trackingKeyPrefix+"ORD-1"))
	assert.False(t, mr.Exists(trackingKeyPrefix+"PKG-1"))

	require.NoError(t, tc.Invalidate(ctx))
}

func TestRedisTrackingCache_Expiry(t *testing.T) {
	tc, mr := newTrackingCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, tc.Set(ctx, "ORD-1", &domain.Order{ID: "x"}))
	mr.FastForward(31 * time.Second)

	got, err := tc.Get(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisTrackingCache_StaleSetAfterInvalidateIsDropped(t *testing.T) {
	tc, mr := newTrackingCache(t, time.Minute)
	ctx := context.Background()

	stale := &domain.Order{ID: "x", OrderID: "ORD-1", Status: domain.OrderStatusInWarehouse}
	fresh := &domain.Order{ID: "x", OrderID: "ORD-1", Status: domain.OrderStatusInTransit}

	// a reader loaded the order, then a write committed and invalidated before the reader cached it
	require.NoError(t, tc.Invalidate(ctx, "ORD-1"))
	require.NoError(t, tc.Set(ctx, "ORD-1", stale))

	got, err := tc.Get(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.True(t, mr.Exists(fenceKeyPrefix+"ORD-1"))

	mr.FastForward(invalidationFence + time.Second)

	require.NoError(t, tc.Set(ctx, "ORD-1", fresh))
	got, err = tc.Get(ctx, "ORD-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.OrderStatusInTransit, got.Status)
}
