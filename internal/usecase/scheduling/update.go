package scheduling

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bookwise-app/bookwise-server/internal/audit"
	"github.com/bookwise-app/bookwise-server/internal/cache"
	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/httperr"
	"github.com/bookwise-app/bookwise-server/internal/models"
)

type UpdateAppointmentInput struct {
	ID string

	CustomerName string
	Phone        string
	Email        string

	Date string
	Time string

	Notes string
}

type UpdateAppointment struct {
	repo  schedule.Repository
	sched *schedule.Scheduler
	cache *cache.Availability
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateAppointment(
	repo schedule.Repository,
	sched *schedule.Scheduler,
	availCache *cache.Availability,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		sched: sched,
		cache: availCache,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	if !uc.sched.HasSlot(in.Time) {
		return nil, httperr.ErrBusiness("unknown_slot")
	}

	day, err := time.ParseInLocation(dateLayout, in.Date, uc.sched.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	existing, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if existing.IsBlock() {
		return nil, httperr.ErrBusiness("cannot_edit_block")
	}

	start := uc.sched.SlotTime(day, in.Time)
	now := uc.now()
	oldStart := existing.StartTime

	// A booking cannot be moved onto a day that is already over.
	if _, dayEnd := uc.sched.DayBounds(day); !now.Before(dayEnd) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// An appointment may keep its own slot even inside the cutoff
	// window; any other slot on the current day must respect it.
	if !start.Equal(oldStart) &&
		uc.sched.SameDay(day, now) &&
		start.Before(now.Add(uc.sched.MinAdvance())) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	err = uc.repo.InTx(ctx, func(tx schedule.Repository) error {

		dayStart, dayEnd := uc.sched.DayBounds(day)
		rows, err := tx.ListDayLocked(ctx, dayStart, dayEnd)
		if err != nil {
			return err
		}

		slots := uc.sched.AvailableSlots(day, schedule.Records(rows), in.ID, now)
		if !containsSlot(slots, in.Time) {
			return httperr.ErrBusiness("slot_taken")
		}

		existing.CustomerName = in.CustomerName
		existing.Phone = in.Phone
		existing.Email = in.Email
		existing.StartTime = start
		existing.Notes = in.Notes

		return tx.SaveAppointment(ctx, existing)
	})

	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, oldStart)
	uc.cache.InvalidateDay(ctx, day)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: existing.ID,
	})

	return existing, nil
}
