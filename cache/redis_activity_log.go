package cache

import (
	"encoding/json"
	"fmt"

	"gopkg.in/redis.v5"

	"bookshelf/models"
)

const ACTIVITY_KEY = "bookshelf:activity"

var _ ActivityLog = (*RedisActivityLog)(nil)

type RedisActivityLog struct {
	Client    *redis.Client
	Key       string
	MaxNumber int
}

func CreateRedisActivityLog(client *redis.Client, maxNumber int) *RedisActivityLog {
	return &RedisActivityLog{Client: client, Key: ACTIVITY_KEY, MaxNumber: maxNumber}
}

func (activity *RedisActivityLog) Write(entry models.Activity) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	pushCmd := activity.Client.LPush(activity.Key, value)
	if pushCmd.Err() != nil {
		return pushCmd.Err()
	}

	trimCmd := activity.Client.LTrim(activity.Key, 0, int64(activity.MaxNumber-1))
	if trimCmd.Err() != nil {
		return trimCmd.Err()
	}

	return nil
}

func (activity *RedisActivityLog) Read() ([]models.Activity, error) {
	raw, err := activity.Client.LRange(activity.Key, 0, int64(activity.MaxNumber-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]models.Activity, 0, len(raw))
	for _, item := range raw {
		var entry models.Activity
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("decode activity entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (activity *RedisActivityLog) Close() error {
	return activity.Client.Close()
}
