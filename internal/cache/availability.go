package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dayKeyLayout = "2006-01-02"

// Availability caches computed slot lists per calendar day. Only future
// days are cached by callers: today's availability moves with the rolling
// cutoff and is always recomputed. A nil *Availability is a no-op.
type Availability struct {
	rdb *redis.Client
	loc *time.Location
	ttl time.Duration
	log *zap.Logger
}

func NewAvailability(rdb *redis.Client, loc *time.Location, ttl time.Duration, log *zap.Logger) *Availability {
	if loc == nil {
		loc = time.UTC
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Availability{rdb: rdb, loc: loc, ttl: ttl, log: log}
}

func (c *Availability) enabled() bool {
	return c != nil && c.rdb != nil
}

// key normalizes the timestamp into the business timezone first, so a
// request-parsed day and a DB-returned slot time land on the same entry.
func (c *Availability) key(day time.Time) string {
	return "availability:" + day.In(c.loc).Format(dayKeyLayout)
}

func (c *Availability) Get(ctx context.Context, day time.Time) ([]string, bool) {
	if !c.enabled() {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(day)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Availability) Set(ctx context.Context, day time.Time, slots []string) {
	if !c.enabled() {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, c.key(day), raw, c.ttl).Err(); err != nil {
		c.log.Warn("availability cache set failed", zap.Error(err))
	}
}

// InvalidateDay drops the cached slots for a day after any calendar
// mutation touching it.
func (c *Availability) InvalidateDay(ctx context.Context, day time.Time) {
	if !c.enabled() {
		return
	}

	if err := c.rdb.Del(ctx, c.key(day)).Err(); err != nil {
		c.log.Warn("availability cache invalidate failed", zap.Error(err))
	}
}
