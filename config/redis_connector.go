package config

import (
	"gopkg.in/redis.v5"
)

// NewRedisClient connects to the configured Redis and checks it answers.
func (c *Config) NewRedisClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.RedisURL,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})

	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
