package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
)

func TestShardedCache_SetGet(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	box := model.Box{Identifier: "SM", DisplayName: "Small Box", Weight: 2.5}
	c.Set("1234567890", box)

	got, ok := c.Get("1234567890")
	require.True(t, ok)
	assert.Equal(t, box, got)
}

func TestShardedCache_Miss(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestShardedCache_Expiration(t *testing.T) {
	c := NewShardedCache(100, 10*time.Millisecond, 4)
	defer c.Stop()

	c.Set("k", model.Box{Identifier: "A"})
	time.Sleep(150 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestShardedCache_Invalidate(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	c.Set("k", model.Box{Identifier: "A"})
	c.Invalidate("k")

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestShardedCache_Clear(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("k%d", i), model.Box{Identifier: "A"})
	}
	c.Clear()

	for i := 0; i < 10; i++ {
		_, ok := c.Get(fmt.Sprintf("k%d", i))
		assert.False(t, ok)
	}
}

func TestShardedCache_LRUEviction(t *testing.T) {
	// 4 shards with total capacity 4 gives 1 entry per shard, so a second
	// entry hashing to the same shard evicts the first.
	c := NewShardedCache(4, time.Minute, 4)
	defer c.Stop()

	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("k%d", i), model.Box{Identifier: "A"})
	}

	m := c.Metrics()
	assert.LessOrEqual(t, m.Size, 4)
	assert.Greater(t, m.Evictions, int64(0))
}

func TestShardedCache_Metrics(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	c.Set("k", model.Box{Identifier: "A"})
	c.Get("k")
	c.Get("missing")

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
}

func TestShardedCache_ConcurrentAccess(t *testing.T) {
	c := NewShardedCache(1000, time.Minute, 16)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d-%d", n, j)
				c.Set(key, model.Box{Identifier: key})
				got, ok := c.Get(key)
				if ok {
					assert.Equal(t, key, got.Identifier)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestShardedCache_ShardCountRoundsUp(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 5)
	defer c.Stop()
	assert.Equal(t, 8, c.numShards)

	c2 := NewShardedCache(100, time.Minute, 0)
	defer c2.Stop()
	assert.Equal(t, 16, c2.numShards)
}
