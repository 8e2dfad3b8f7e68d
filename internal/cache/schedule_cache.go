package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const dayKeyPrefix = "schedule:day:"

// ScheduleCache holds the computed day-schedule snapshot per date.
// It is safe to use with a nil client (every lookup misses) and it
// never lets a Redis failure surface to the caller.
type ScheduleCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewScheduleCache(rdb *redis.Client, ttl time.Duration) *ScheduleCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ScheduleCache{rdb: rdb, ttl: ttl}
}

// GetDay loads the snapshot for date ("2006-01-02") into v.
func (c *ScheduleCache) GetDay(ctx context.Context, date string, v any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, dayKeyPrefix+date).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("cache: corrupt day snapshot for %s: %v", date, err)
		return false
	}
	return true
}

func (c *ScheduleCache) SetDay(ctx context.Context, date string, v any) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, dayKeyPrefix+date, raw, c.ttl).Err(); err != nil {
		log.Printf("cache: set day snapshot failed: %v", err)
	}
}

// InvalidateDay drops the snapshot after any booking or report
// mutation touching that date.
func (c *ScheduleCache) InvalidateDay(ctx context.Context, date string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, dayKeyPrefix+date).Err(); err != nil {
		log.Printf("cache: invalidate day snapshot failed: %v", err)
	}
}
