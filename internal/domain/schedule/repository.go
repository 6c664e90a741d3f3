package schedule

import (
	"context"
	"time"

	"github.com/bookwise-app/bookwise-server/internal/models"
)

// Repository is the storage boundary for calendar mutations. The scheduler
// itself is pure; occupancy is re-checked here, inside InTx with the day's
// rows locked, so that two racing mutations cannot both commit against the
// same stale snapshot.
type Repository interface {
	// InTx runs fn against a transactional view of the repository.
	InTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Appointments --------
	ListDay(ctx context.Context, start time.Time, end time.Time) ([]models.Appointment, error)

	// ListDayLocked is ListDay with the rows locked for update. Only
	// meaningful inside InTx.
	ListDayLocked(ctx context.Context, start time.Time, end time.Time) ([]models.Appointment, error)

	ListRange(ctx context.Context, start time.Time, end time.Time) ([]models.Appointment, error)

	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	CreateAppointments(ctx context.Context, aps []models.Appointment) error
	SaveAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
	DeleteAppointments(ctx context.Context, ids []string) error

	// -------- Customers --------
	FindCustomerByPhoneDigits(ctx context.Context, digits string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error

	// -------- Update requests --------
	CreateUpdateRequest(ctx context.Context, req *models.CustomerUpdateRequest) error
}

// Records converts appointment rows into the scheduler's input shape.
func Records(aps []models.Appointment) []Record {
	out := make([]Record, 0, len(aps))
	for _, ap := range aps {
		kind := KindBooking
		if ap.Kind == models.KindBlock {
			kind = KindBlock
		}
		out = append(out, Record{ID: ap.ID, StartTime: ap.StartTime, Kind: kind})
	}
	return out
}
