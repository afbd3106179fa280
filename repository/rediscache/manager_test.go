package rediscache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sruthi7877/user-management-api/pkg/logger"
	"github.com/sruthi7877/user-management-api/pkg/redis"
)

type fakeManagerRepo struct {
	active bool
	err    error
	calls  int
}

func (f *fakeManagerRepo) IsActive(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.active, f.err
}

func TestManagerCache_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	inner := &fakeManagerRepo{active: false}
	cache := NewManagerCache(inner, redis.NewFromClient(db), time.Minute, logger.NoOpLogger())

	mock.ExpectGet("manager:active:m1").SetVal("1")

	active, err := cache.IsActive(context.Background(), "m1")
	require.NoError(t, err)
	assert.True(t, active)
	assert.Zero(t, inner.calls, "A cache hit must not touch the database")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerCache_MissCachesActive(t *testing.T) {
	db, mock := redismock.NewClientMock()
	inner := &fakeManagerRepo{active: true}
	cache := NewManagerCache(inner, redis.NewFromClient(db), time.Minute, logger.NoOpLogger())

	mock.ExpectGet("manager:active:m1").RedisNil()
	mock.ExpectSet("manager:active:m1", "1", time.Minute).SetVal("OK")

	active, err := cache.IsActive(context.Background(), "m1")
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, 1, inner.calls)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerCache_MissDoesNotCacheInactive(t *testing.T) {
	db, mock := redismock.NewClientMock()
	inner := &fakeManagerRepo{active: false}
	cache := NewManagerCache(inner, redis.NewFromClient(db), time.Minute, logger.NoOpLogger())

	mock.ExpectGet("manager:active:m1").RedisNil()

	active, err := cache.IsActive(context.Background(), "m1")
	require.NoError(t, err)
	assert.False(t, active, "Negative answers must not be cached")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerCache_RedisFailureFallsThrough(t *testing.T) {
	db, mock := redismock.NewClientMock()
	inner := &fakeManagerRepo{active: true}
	cache := NewManagerCache(inner, redis.NewFromClient(db), time.Minute, logger.NoOpLogger())

	mock.ExpectGet("manager:active:m1").SetErr(errors.New("connection refused"))
	mock.ExpectSet("manager:active:m1", "1", time.Minute).SetErr(errors.New("connection refused"))

	active, err := cache.IsActive(context.Background(), "m1")
	require.NoError(t, err, "Cache failures must not fail the lookup")
	assert.True(t, active)
	assert.Equal(t, 1, inner.calls)
}

func TestManagerCache_DatabaseFailurePropagates(t *testing.T) {
	db, mock := redismock.NewClientMock()
	innerErr := errors.New("db down")
	inner := &fakeManagerRepo{err: innerErr}
	cache := NewManagerCache(inner, redis.NewFromClient(db), time.Minute, logger.NoOpLogger())

	mock.ExpectGet("manager:active:m1").RedisNil()

	_, err := cache.IsActive(context.Background(), "m1")
	assert.ErrorIs(t, err, innerErr)
}
