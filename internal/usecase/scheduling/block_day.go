package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bookwise-app/bookwise-server/internal/audit"
	"github.com/bookwise-app/bookwise-server/internal/cache"
	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/httperr"
	"github.com/bookwise-app/bookwise-server/internal/models"
)

// BlockDay fills every free slot on a day with manual blocks. The free
// set is derived inside the transaction from locked rows, so firing the
// operation twice cannot double-block: the second run sees the first
// run's blocks and creates nothing.
type BlockDay struct {
	repo  schedule.Repository
	sched *schedule.Scheduler
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewBlockDay(
	repo schedule.Repository,
	sched *schedule.Scheduler,
	availCache *cache.Availability,
	audit *audit.Dispatcher,
) *BlockDay {
	return &BlockDay{
		repo:  repo,
		sched: sched,
		cache: availCache,
		audit: audit,
	}
}

func (uc *BlockDay) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	day, err := time.ParseInLocation(dateLayout, date, uc.sched.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var created []models.Appointment

	err = uc.repo.InTx(ctx, func(tx schedule.Repository) error {

		dayStart, dayEnd := uc.sched.DayBounds(day)
		rows, err := tx.ListDayLocked(ctx, dayStart, dayEnd)
		if err != nil {
			return err
		}

		times := uc.sched.BlockDay(day, schedule.Records(rows))

		created = make([]models.Appointment, 0, len(times))
		for _, ts := range times {
			created = append(created, models.Appointment{
				ID:        uuid.NewString(),
				StartTime: ts,
				Kind:      models.KindBlock,
			})
		}

		return tx.CreateAppointments(ctx, created)
	})

	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, day)

	uc.audit.Dispatch(audit.Event{
		Action:   "day_blocked",
		Entity:   "calendar",
		EntityID: date,
		Metadata: map[string]any{"blocked_slots": len(created)},
	})

	return created, nil
}
