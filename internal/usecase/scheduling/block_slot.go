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

type BlockSlotInput struct {
	Date string
	Time string
}

// BlockSlot closes a single slot with a manual block. Blocks bypass the
// min-advance cutoff: staff may close a slot minutes before it starts.
type BlockSlot struct {
	repo  schedule.Repository
	sched *schedule.Scheduler
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewBlockSlot(
	repo schedule.Repository,
	sched *schedule.Scheduler,
	availCache *cache.Availability,
	audit *audit.Dispatcher,
) *BlockSlot {
	return &BlockSlot{
		repo:  repo,
		sched: sched,
		cache: availCache,
		audit: audit,
	}
}

func (uc *BlockSlot) Execute(
	ctx context.Context,
	in BlockSlotInput,
) (*models.Appointment, error) {

	if !uc.sched.HasSlot(in.Time) {
		return nil, httperr.ErrBusiness("unknown_slot")
	}

	day, err := time.ParseInLocation(dateLayout, in.Date, uc.sched.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var created *models.Appointment

	err = uc.repo.InTx(ctx, func(tx schedule.Repository) error {

		dayStart, dayEnd := uc.sched.DayBounds(day)
		rows, err := tx.ListDayLocked(ctx, dayStart, dayEnd)
		if err != nil {
			return err
		}

		for _, row := range rows {
			if uc.sched.SlotLabel(row.StartTime) == in.Time {
				return httperr.ErrBusiness("slot_taken")
			}
		}

		ap := &models.Appointment{
			ID:        uuid.NewString(),
			StartTime: uc.sched.SlotTime(day, in.Time),
			Kind:      models.KindBlock,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, day)

	uc.audit.Dispatch(audit.Event{
		Action:   "slot_blocked",
		Entity:   "appointment",
		EntityID: created.ID,
	})

	return created, nil
}
