package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheHash(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheFromClient(db, "ts")
	ctx := context.Background()

	mock.ExpectHSet("ts:wl", "bsc:0x1", []byte(`{"chain":"bsc","note":""}`)).SetVal(1)
	require.NoError(t, c.HSet(ctx, "wl", "bsc:0x1", entry{Chain: "bsc"}))

	mock.ExpectHGetAll("ts:wl").SetVal(map[string]string{"bsc:0x1": `{"chain":"bsc"}`})
	typed, err := HGetAllTyped[entry](ctx, c, "wl")
	require.NoError(t, err)
	assert.Equal(t, "bsc", typed["bsc:0x1"].Chain)

	mock.ExpectHDel("ts:wl", "bsc:0x1").SetVal(1)
	require.NoError(t, c.HDel(ctx, "wl", "bsc:0x1"))
	require.NoError(t, c.HDel(ctx, "wl"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheHashError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheFromClient(db, "")

	mock.ExpectHGetAll("wl").SetErr(redis.ErrClosed)
	_, err := HGetAllTyped[entry](context.Background(), c, "wl")
	assert.ErrorIs(t, err, redis.ErrClosed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisPoolOptions(t *testing.T) {
	cfg := &RedisConfig{PoolSize: 10, MinIdleConns: 2, PoolTimeout: 30 * time.Second}
	WithRedisPool(25, 0, time.Second)(cfg)

	opts := redisOptions(cfg)
	assert.Equal(t, 25, opts.PoolSize)
	assert.Equal(t, 2, opts.MinIdleConns)
	assert.Equal(t, time.Second, opts.PoolTimeout)
}
