// Package rediscache provides Redis-backed read-through caches over the
// repository interfaces.
package rediscache

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sruthi7877/user-management-api/domain/repository"
	"github.com/sruthi7877/user-management-api/pkg/logger"
	"github.com/sruthi7877/user-management-api/pkg/redis"
)

const managerActiveKeyPrefix = "manager:active:"

// managerCache decorates a Manager repository with a positive-result cache.
// Only "active" answers are cached: a manager that is created or activated
// after a negative lookup must be visible immediately, while a cached
// "active" going stale for one TTL is harmless because a manager's later
// deactivation never retroactively affects user rows.
type managerCache struct {
	next   repository.Manager
	client redis.RedisClient
	ttl    time.Duration
	logger logger.LoggerInterface
}

// NewManagerCache wraps next with a read-through Redis cache. Cache errors
// are logged and fall through to the underlying repository.
func NewManagerCache(next repository.Manager, client redis.RedisClient, ttl time.Duration, logger logger.LoggerInterface) repository.Manager {
	return &managerCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *managerCache) IsActive(ctx context.Context, managerID string) (bool, error) {
	key := managerActiveKeyPrefix + managerID

	val, err := c.client.Get(ctx, key)
	if err == nil && val == "1" {
		return true, nil
	}
	if err != nil && !errors.Is(err, goredis.Nil) {
		c.logger.WarnContext(ctx, "Manager cache read failed, falling back to database", "manager_id", managerID, "error", err)
	}

	active, err := c.next.IsActive(ctx, managerID)
	if err != nil {
		return false, err
	}

	if active {
		if err := c.client.Set(ctx, key, "1", c.ttl); err != nil {
			c.logger.WarnContext(ctx, "Manager cache write failed", "manager_id", managerID, "error", err)
		}
	}
	return active, nil
}
