package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"helpdesk/internal/shared/logger"
)

const (
	unreadCountKeyPrefix = "helpdesk:notifications:unread:"
	unreadCountTTL       = 5 * time.Minute
)

// RedisUnreadCountCache caches per-user unread notification counters.
type RedisUnreadCountCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisUnreadCountCache(client *redis.Client, logger logger.Interface) *RedisUnreadCountCache {
	return &RedisUnreadCountCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisUnreadCountCache) key(userID uint) string {
	return fmt.Sprintf("%s%d", unreadCountKeyPrefix, userID)
}

func (c *RedisUnreadCountCache) Get(ctx context.Context, userID uint) (int64, bool, error) {
	count, err := c.client.Get(ctx, c.key(userID)).Int64()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get unread count from cache: %w", err)
	}
	return count, true, nil
}

func (c *RedisUnreadCountCache) Set(ctx context.Context, userID uint, count int64) error {
	if err := c.client.Set(ctx, c.key(userID), count, unreadCountTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache unread count: %w", err)
	}
	return nil
}

func (c *RedisUnreadCountCache) Invalidate(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate unread count: %w", err)
	}
	return nil
}
