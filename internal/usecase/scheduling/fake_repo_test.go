package scheduling

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/models"
)

// fakeRepo is an in-memory schedule.Repository. Transactions are a
// pass-through; the usecases under test are single-threaded here.
type fakeRepo struct {
	appointments map[string]*models.Appointment
	customers    map[string]*models.Customer
	requests     []*models.CustomerUpdateRequest
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[string]*models.Appointment),
		customers:    make(map[string]*models.Customer),
	}
}

func (f *fakeRepo) InTx(ctx context.Context, fn func(tx schedule.Repository) error) error {
	return fn(f)
}

func (f *fakeRepo) listRange(start, end time.Time) []models.Appointment {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (f *fakeRepo) ListDay(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	return f.listRange(start, end), nil
}

func (f *fakeRepo) ListDayLocked(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	return f.listRange(start, end), nil
}

func (f *fakeRepo) ListRange(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	return f.listRange(start, end), nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) CreateAppointments(_ context.Context, aps []models.Appointment) error {
	for i := range aps {
		cp := aps[i]
		f.appointments[cp.ID] = &cp
	}
	return nil
}

func (f *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id string) error {
	if _, ok := f.appointments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) DeleteAppointments(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(f.appointments, id)
	}
	return nil
}

func (f *fakeRepo) FindCustomerByPhoneDigits(_ context.Context, digits string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.PhoneDigits == digits {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CreateCustomer(_ context.Context, customer *models.Customer) error {
	cp := *customer
	f.customers[customer.ID] = &cp
	return nil
}

func (f *fakeRepo) CreateUpdateRequest(_ context.Context, req *models.CustomerUpdateRequest) error {
	cp := *req
	f.requests = append(f.requests, &cp)
	return nil
}

var _ schedule.Repository = (*fakeRepo)(nil)
