package cache

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/orderdesk/pkg/metrics"
)

type row struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestMemoryRoundTripAndExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", []row{{ID: 1, Name: "Drinks"}}, time.Minute))

	var got []row
	require.True(t, m.Get(ctx, "k", &got))
	assert.Equal(t, []row{{ID: 1, Name: "Drinks"}}, got)

	now = now.Add(2 * time.Minute)
	assert.False(t, m.Get(ctx, "k", &got))
}

func TestMemoryBumpInvalidates(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	gen, err := m.Generation(ctx)
	require.NoError(t, err)
	key := Key(gen, "categories", "all")
	require.NoError(t, m.Set(ctx, key, row{ID: 1}, time.Minute))

	require.NoError(t, m.Bump(ctx))
	next, _ := m.Generation(ctx)
	assert.Equal(t, gen+1, next)
	assert.NotEqual(t, key, Key(next, "categories", "all"))

	var got row
	assert.False(t, m.Get(ctx, key, &got), "bump drops old entries")
}

func TestMemoryObservesHitsAndMisses(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	hits := testutil.ToFloat64(metrics.CacheHits.WithLabelValues("memory"))
	misses := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues("memory"))

	var got row
	m.Get(ctx, "absent", &got)
	require.NoError(t, m.Set(ctx, "present", row{ID: 2}, time.Minute))
	m.Get(ctx, "present", &got)

	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.CacheHits.WithLabelValues("memory")))
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.CacheMisses.WithLabelValues("memory")))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "orderdesk:g3:products:id:7:rel", Key(3, "products", "id", "7", "rel"))
}

func TestNewRedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedis(ctx, "127.0.0.1:1", "")
	assert.ErrorContains(t, err, "cache: redis ping")
}
