package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"voting-service/internal/ports/models"

	"github.com/redis/go-redis/v9"
)

// leaderboardTTL bounds staleness between invalidations; the cache is also
// dropped explicitly on every accepted vote and event mutation.
const leaderboardTTL = 30 * time.Second

// RedisLeaderboardCache caches computed tallies in Redis, keyed per event
type RedisLeaderboardCache struct {
	client *redis.Client
}

func NewRedisLeaderboardCache(client *redis.Client) *RedisLeaderboardCache {
	return &RedisLeaderboardCache{client: client}
}

func leaderboardKey(eventID uint) string {
	return fmt.Sprintf("leaderboard:%d", eventID)
}

// Get returns the cached tally for an event, or nil on a miss
func (c *RedisLeaderboardCache) Get(ctx context.Context, eventID uint) (*models.LeaderboardResponse, error) {
	data, err := c.client.Get(ctx, leaderboardKey(eventID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var leaderboard models.LeaderboardResponse
	if err := json.Unmarshal(data, &leaderboard); err != nil {
		return nil, err
	}
	return &leaderboard, nil
}

// Set stores a freshly computed tally
func (c *RedisLeaderboardCache) Set(ctx context.Context, eventID uint, leaderboard *models.LeaderboardResponse) error {
	data, err := json.Marshal(leaderboard)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, leaderboardKey(eventID), data, leaderboardTTL).Err()
}

// Invalidate drops the cached tally for an event
func (c *RedisLeaderboardCache) Invalidate(ctx context.Context, eventID uint) error {
	return c.client.Del(ctx, leaderboardKey(eventID)).Err()
}
