package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

func (r *SchedulingGormRepository) InTx(
	ctx context.Context,
	fn func(tx schedule.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SchedulingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *SchedulingGormRepository) ListDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	return r.listDay(ctx, start, end, false)
}

func (r *SchedulingGormRepository) ListDayLocked(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	return r.listDay(ctx, start, end, true)
}

func (r *SchedulingGormRepository) listDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
	locked bool,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx)
	if locked {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var aps []models.Appointment
	if err := q.
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *SchedulingGormRepository) ListRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Attachments").
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Attachments").
		Where("id = ?", id).
		First(&ap).Error
	if err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *SchedulingGormRepository) CreateAppointments(
	ctx context.Context,
	aps []models.Appointment,
) error {
	if len(aps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&aps).Error
}

func (r *SchedulingGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *SchedulingGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SchedulingGormRepository) DeleteAppointments(
	ctx context.Context,
	ids []string,
) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, "id IN ?", ids).Error
}

// --------------------------------------------------
// Customers
// --------------------------------------------------

func (r *SchedulingGormRepository) FindCustomerByPhoneDigits(
	ctx context.Context,
	digits string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone_digits = ?", digits).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *SchedulingGormRepository) CreateCustomer(
	ctx context.Context,
	customer *models.Customer,
) error {
	err := r.db.WithContext(ctx).Create(customer).Error
	if err == nil {
		return nil
	}

	// Two first bookings for the same phone can race past the lookup.
	// The unique index on phone_digits decides; adopt the winning row.
	if isUniqueViolation(err) {
		return r.db.WithContext(ctx).
			Where("phone_digits = ?", customer.PhoneDigits).
			First(customer).Error
	}

	return err
}

// --------------------------------------------------
// Update requests
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateUpdateRequest(
	ctx context.Context,
	req *models.CustomerUpdateRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// Compile-time check
var _ schedule.Repository = (*SchedulingGormRepository)(nil)
