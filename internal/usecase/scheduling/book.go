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
	"github.com/bookwise-app/bookwise-server/internal/validators"
)

const dateLayout = "2006-01-02"

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	CustomerName string
	Phone        string
	Email        string

	Date string // YYYY-MM-DD
	Time string // HH:MM, must be a catalog slot

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  schedule.Repository
	sched *schedule.Scheduler
	cache *cache.Availability
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewBookAppointment(
	repo schedule.Repository,
	sched *schedule.Scheduler,
	availCache *cache.Availability,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		sched: sched,
		cache: availCache,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if !uc.sched.HasSlot(in.Time) {
		return nil, httperr.ErrBusiness("unknown_slot")
	}

	day, err := time.ParseInLocation(dateLayout, in.Date, uc.sched.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start := uc.sched.SlotTime(day, in.Time)
	now := uc.now()

	// Days already over are rejected outright; the cutoff below only
	// governs the current day.
	if _, dayEnd := uc.sched.DayBounds(day); !now.Before(dayEnd) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// The cutoff window only exists on the current day.
	if uc.sched.SameDay(day, now) && start.Before(now.Add(uc.sched.MinAdvance())) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	digits := validators.NormalizePhone(in.Phone)
	if digits == "" {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	var created *models.Appointment

	err = uc.repo.InTx(ctx, func(tx schedule.Repository) error {

		dayStart, dayEnd := uc.sched.DayBounds(day)
		rows, err := tx.ListDayLocked(ctx, dayStart, dayEnd)
		if err != nil {
			return err
		}

		// Occupancy is re-derived against the locked rows, not the
		// caller's view of the calendar.
		slots := uc.sched.AvailableSlots(day, schedule.Records(rows), "", now)
		if !containsSlot(slots, in.Time) {
			return httperr.ErrBusiness("slot_taken")
		}

		customer, err := tx.FindCustomerByPhoneDigits(ctx, digits)
		if err != nil {
			return err
		}

		if customer == nil {
			customer = &models.Customer{
				ID:               uuid.NewString(),
				Name:             in.CustomerName,
				Email:            in.Email,
				Phone:            in.Phone,
				PhoneDigits:      digits,
				PastBookingData:  "New customer.",
				UserBehaviorData: "Booked via application.",
			}
			if err := tx.CreateCustomer(ctx, customer); err != nil {
				return err
			}
		} else if changedDetails(customer, in.CustomerName, in.Email) {
			// Returning customer with different details: the stored
			// record only changes once staff approve the request.
			req := &models.CustomerUpdateRequest{
				ID:             uuid.NewString(),
				CustomerID:     customer.ID,
				CurrentName:    customer.Name,
				CurrentEmail:   customer.Email,
				RequestedName:  in.CustomerName,
				RequestedEmail: in.Email,
				Status:         models.UpdateStatusPending,
			}
			if err := tx.CreateUpdateRequest(ctx, req); err != nil {
				return err
			}
		}

		ap := &models.Appointment{
			ID:           uuid.NewString(),
			CustomerID:   customer.ID,
			CustomerName: in.CustomerName,
			Email:        in.Email,
			Phone:        in.Phone,
			StartTime:    start,
			Kind:         models.KindBooking,
			Notes:        in.Notes,
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
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: created.ID,
	})

	return created, nil
}

func changedDetails(customer *models.Customer, name, email string) bool {
	if name != "" && name != customer.Name {
		return true
	}
	if email != "" && email != customer.Email {
		return true
	}
	return false
}

func containsSlot(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}
