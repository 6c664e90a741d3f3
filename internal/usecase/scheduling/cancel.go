package scheduling

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookwise-app/bookwise-server/internal/audit"
	"github.com/bookwise-app/bookwise-server/internal/cache"
	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/httperr"
	"github.com/bookwise-app/bookwise-server/internal/models"
)

// CancelAppointment removes a booking or a single manual block. Cancelled
// rows are deleted outright; the slot simply becomes free again.
type CancelAppointment struct {
	repo  schedule.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo schedule.Repository,
	availCache *cache.Availability,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		cache: availCache,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, ap.StartTime)

	action := "appointment_cancelled"
	if ap.IsBlock() {
		action = "slot_unblocked"
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
