package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testCache(t *testing.T, loc *time.Location) *Availability {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewAvailability(rdb, loc, time.Minute, zap.NewNop())
}

func TestAvailability_RoundTrip(t *testing.T) {
	c := testCache(t, time.UTC)
	ctx := context.Background()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	_, ok := c.Get(ctx, day)
	assert.False(t, ok)

	c.Set(ctx, day, []string{"09:00", "09:30"})

	slots, ok := c.Get(ctx, day)
	require.True(t, ok)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestAvailability_InvalidateDay(t *testing.T) {
	c := testCache(t, time.UTC)
	ctx := context.Background()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	c.Set(ctx, day, []string{"09:00"})
	c.InvalidateDay(ctx, day)

	_, ok := c.Get(ctx, day)
	assert.False(t, ok)
}

func TestAvailability_NormalizesDayAcrossTimezones(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	c := testCache(t, ny)
	ctx := context.Background()

	day := time.Date(2026, 9, 11, 0, 0, 0, 0, ny)
	c.Set(ctx, day, []string{"21:00"})

	// A late-evening slot rendered in UTC falls on the next calendar
	// date; it must still hit the same business-day entry.
	lateSlotUTC := time.Date(2026, 9, 11, 21, 0, 0, 0, ny).UTC()
	assert.Equal(t, 12, lateSlotUTC.Day())

	c.InvalidateDay(ctx, lateSlotUTC)

	_, ok := c.Get(ctx, day)
	assert.False(t, ok)
}

func TestAvailability_NilIsNoop(t *testing.T) {
	var c *Availability
	ctx := context.Background()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	c.Set(ctx, day, []string{"09:00"})
	_, ok := c.Get(ctx, day)
	assert.False(t, ok)
	c.InvalidateDay(ctx, day)
}
