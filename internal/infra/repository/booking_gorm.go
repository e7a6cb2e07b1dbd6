package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/httperr"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Worker
// --------------------------------------------------

func (r *BookingGormRepository) GetWorker(
	ctx context.Context,
	salonID uint,
	workerID uint,
) (*models.User, error) {

	var worker models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", workerID, salonID).
		First(&worker).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *BookingGormRepository) ListWorkers(
	ctx context.Context,
	salonID uint,
) ([]models.User, error) {

	var workers []models.User
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *BookingGormRepository) GetWorkingHours(
	ctx context.Context,
	workerID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("worker_id = ? AND weekday = ?", workerID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}
	return &wh, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// AssertNoTimeConflict carga las reservas bloqueantes del día y comprueba el
// solape en memoria: el inicio vive en la columna start_time ("HH:MM") y el
// fin es derivado, así que el test de intervalos se hace en el dominio.
func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	workerID uint,
	date time.Time,
	startMin int,
	durationMin int,
) error {

	var existing []models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "start_time", "duration_min", "status").
		Where(
			"worker_id = ? AND date = ? AND status IN ?",
			workerID, date,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		).
		Find(&existing).Error; err != nil {
		return err
	}

	for _, busy := range domain.BusyFromBookings(existing) {
		if domain.Overlaps(startMin, durationMin, busy.StartMin, busy.DurationMin) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	return nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForSalon(
	ctx context.Context,
	bookingID uint,
	salonID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("id = ? AND salon_id = ?", bookingID, salonID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForWorkerDay(
	ctx context.Context,
	workerID uint,
	date time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "duration_min", "status").
		Where(
			"worker_id = ? AND date = ? AND status IN ?",
			workerID, date,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	salonID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Worker").
		Where(
			"salon_id = ? AND date >= ? AND date < ?",
			salonID, from, to,
		).
		Order("date ASC, start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Calendar
// --------------------------------------------------

func (r *BookingGormRepository) IsHoliday(
	ctx context.Context,
	salonID uint,
	date time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Holiday{}).
		Where("salon_id = ? AND date = ?", salonID, date).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Reconciliation
// --------------------------------------------------

func (r *BookingGormRepository) ListAllBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Salon").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	bookingID uint,
	status domain.Status,
) error {

	now := time.Now()
	cols := map[string]any{"status": string(status), "updated_at": now}

	switch status {
	case domain.StatusRejected:
		cols["rejected_at"] = now
	case domain.StatusCompleted:
		cols["completed_at"] = now
	case domain.StatusCancelled:
		cols["cancelled_at"] = now
	}

	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Updates(cols).Error
}

func (r *BookingGormRepository) AppendBookingMotive(
	ctx context.Context,
	bookingID uint,
	text string,
) error {
	return r.appendColumn(ctx, bookingID, "motive", text)
}

func (r *BookingGormRepository) AppendBookingInternalNote(
	ctx context.Context,
	bookingID uint,
	text string,
) error {
	return r.appendColumn(ctx, bookingID, "internal_notes", text)
}

func (r *BookingGormRepository) appendColumn(
	ctx context.Context,
	bookingID uint,
	column string,
	text string,
) error {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "motive", "internal_notes").
		First(&b, bookingID).Error; err != nil {
		return err
	}

	current := b.Motive
	if column == "internal_notes" {
		current = b.InternalNotes
	}

	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update(column, domain.AppendNote(current, text)).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
