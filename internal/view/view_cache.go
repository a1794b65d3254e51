package view

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dayCountKeyPrefix = "leaveboard:daycounts:"

func dayCountKey(year, month int) string {
	return fmt.Sprintf("%s%04d-%02d", dayCountKeyPrefix, year, month)
}

// DayCountCache keeps the per-day record counts for one calendar month in
// Redis. Mutations on this instance and record-changed events from other
// instances both invalidate through Invalidate.
type DayCountCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDayCountCache(rdb *redis.Client) *DayCountCache {
	return &DayCountCache{rdb: rdb, ttl: 30 * time.Minute}
}

func (c *DayCountCache) Get(ctx context.Context, year, month int) (map[string]int, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	cached, err := c.rdb.Get(ctx, dayCountKey(year, month)).Result()
	if err != nil {
		return nil, false
	}

	var counts map[string]int
	if err := json.Unmarshal([]byte(cached), &counts); err != nil {
		return nil, false
	}
	return counts, true
}

func (c *DayCountCache) Set(ctx context.Context, year, month int, counts map[string]int) {
	if c == nil || c.rdb == nil {
		return
	}

	if payload, err := json.Marshal(counts); err == nil {
		c.rdb.Set(ctx, dayCountKey(year, month), payload, c.ttl)
	}
}

// Invalidate drops the cached month. Safe to call for months that were never
// cached.
func (c *DayCountCache) Invalidate(ctx context.Context, year, month int) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, dayCountKey(year, month)).Err()
}
