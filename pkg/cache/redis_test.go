package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Key(t *testing.T) {
	c := &Cache{prefix: "animebot"}
	assert.Equal(t, "animebot:queries:u1", c.Key("queries", "u1"))

	c = &Cache{}
	assert.Equal(t, "queries:u1", c.Key("queries", "u1"))
}

func TestCache_ListRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedisCache("redis://"+mr.Addr(), "test")
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	n, err := c.RPush(ctx, c.Key("list"), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = c.RPush(ctx, c.Key("list"), "c")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	items, err := c.LRange(ctx, c.Key("list"), 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestNewRedisCache_InvalidURL(t *testing.T) {
	_, err := NewRedisCache("not-a-url", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisCache("redis://"+addr, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}
