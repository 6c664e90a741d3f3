package scheduling

import (
	"context"
	"time"

	"github.com/bookwise-app/bookwise-server/internal/cache"
	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
)

type GetAvailability struct {
	repo  schedule.Repository
	sched *schedule.Scheduler
	cache *cache.Availability
	now   func() time.Time
}

func NewGetAvailability(
	repo schedule.Repository,
	sched *schedule.Scheduler,
	availCache *cache.Availability,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		sched: sched,
		cache: availCache,
		now:   time.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	day time.Time,
	excludeID string,
) ([]string, error) {

	now := uc.now()

	// Today's availability shifts with the rolling cutoff and edit
	// requests depend on the excluded id, so only plain future-day
	// lookups hit the cache.
	cacheable := excludeID == "" && !uc.sched.SameDay(day, now)

	if cacheable {
		if slots, ok := uc.cache.Get(ctx, day); ok {
			return slots, nil
		}
	}

	start, end := uc.sched.DayBounds(day)
	rows, err := uc.repo.ListDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	slots := uc.sched.AvailableSlots(day, schedule.Records(rows), excludeID, now)

	if cacheable {
		uc.cache.Set(ctx, day, slots)
	}

	return slots, nil
}
