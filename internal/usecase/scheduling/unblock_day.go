package scheduling

import (
	"context"
	"time"

	"github.com/bookwise-app/bookwise-server/internal/audit"
	"github.com/bookwise-app/bookwise-server/internal/cache"
	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/httperr"
)

// UnblockDay removes every manual block on a day. Customer bookings are
// never touched.
type UnblockDay struct {
	repo  schedule.Repository
	sched *schedule.Scheduler
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewUnblockDay(
	repo schedule.Repository,
	sched *schedule.Scheduler,
	availCache *cache.Availability,
	audit *audit.Dispatcher,
) *UnblockDay {
	return &UnblockDay{
		repo:  repo,
		sched: sched,
		cache: availCache,
		audit: audit,
	}
}

func (uc *UnblockDay) Execute(
	ctx context.Context,
	date string,
) (int, error) {

	day, err := time.ParseInLocation(dateLayout, date, uc.sched.Location())
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date")
	}

	removed := 0

	err = uc.repo.InTx(ctx, func(tx schedule.Repository) error {

		dayStart, dayEnd := uc.sched.DayBounds(day)
		rows, err := tx.ListDayLocked(ctx, dayStart, dayEnd)
		if err != nil {
			return err
		}

		ids := uc.sched.UnblockDay(day, schedule.Records(rows))
		if err := tx.DeleteAppointments(ctx, ids); err != nil {
			return err
		}

		removed = len(ids)
		return nil
	})

	if err != nil {
		return 0, err
	}

	uc.cache.InvalidateDay(ctx, day)

	uc.audit.Dispatch(audit.Event{
		Action:   "day_unblocked",
		Entity:   "calendar",
		EntityID: date,
		Metadata: map[string]any{"removed_blocks": removed},
	})

	return removed, nil
}
