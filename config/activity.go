package config

import (
	"fmt"
	"log/slog"

	"bookshelf/cache"
)

// OpenActivityLog uses Redis when BOOKSHELF_REDIS_URL is set and an
// in-process log otherwise.
func (c *Config) OpenActivityLog(logger *slog.Logger) (cache.ActivityLog, error) {
	if c.RedisURL == "" {
		logger.Debug("activity log in memory", "size", c.ActivitySize)
		return cache.CreateMemoryActivityLog(c.ActivitySize), nil
	}

	client, err := c.NewRedisClient()
	if err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", c.RedisURL, err)
	}
	logger.Info("activity log in redis", "addr", c.RedisURL, "size", c.ActivitySize)
	return cache.CreateRedisActivityLog(client, c.ActivitySize), nil
}
