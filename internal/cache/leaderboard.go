// Package cache holds the optional Redis layer in front of leaderboard
// computation. Boards are small JSON blobs with a short TTL; a cold or
// unreachable Redis only costs a recomputation.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"testprep-service/internal/models"
)

type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: ttl}
}

func (c *LeaderboardCache) key(testID string) string {
	return "leaderboard:" + testID
}

// Get returns the cached board for a test, if present and decodable.
func (c *LeaderboardCache) Get(ctx context.Context, testID string) (*models.RankedBoard, bool) {
	raw, err := c.client.Get(ctx, c.key(testID)).Bytes()
	if err != nil {
		return nil, false
	}
	var board models.RankedBoard
	if err := json.Unmarshal(raw, &board); err != nil {
		log.Printf("Warning: dropping undecodable leaderboard cache for test %s: %v", testID, err)
		c.Invalidate(ctx, testID)
		return nil, false
	}
	return &board, true
}

// Set stores a board with the configured TTL. Failures are logged only.
func (c *LeaderboardCache) Set(ctx context.Context, testID string, board *models.RankedBoard) {
	raw, err := json.Marshal(board)
	if err != nil {
		log.Printf("Warning: could not encode leaderboard for test %s: %v", testID, err)
		return
	}
	if err := c.client.Set(ctx, c.key(testID), raw, c.ttl).Err(); err != nil {
		log.Printf("Warning: could not cache leaderboard for test %s: %v", testID, err)
	}
}

// Invalidate drops the cached board, typically right after a new submission.
func (c *LeaderboardCache) Invalidate(ctx context.Context, testID string) {
	if err := c.client.Del(ctx, c.key(testID)).Err(); err != nil {
		log.Printf("Warning: could not invalidate leaderboard for test %s: %v", testID, err)
	}
}
