package booking

import (
	"context"
	"time"

	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Worker --------
	GetWorker(
		ctx context.Context,
		salonID uint,
		workerID uint,
	) (*models.User, error)

	ListWorkers(
		ctx context.Context,
		salonID uint,
	) ([]models.User, error)

	GetWorkingHours(
		ctx context.Context,
		workerID uint,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		workerID uint,
		date time.Time,
		startMin int,
		durationMin int,
	) error

	// -------- Booking (state change) --------
	GetBookingForSalon(
		ctx context.Context,
		bookingID uint,
		salonID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------
	ListBookingsForWorkerDay(
		ctx context.Context,
		workerID uint,
		date time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		salonID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	// -------- Calendar --------
	IsHoliday(
		ctx context.Context,
		salonID uint,
		date time.Time,
	) (bool, error)

	// -------- Reconciliation --------
	ListAllBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	UpdateBookingStatus(
		ctx context.Context,
		bookingID uint,
		status Status,
	) error

	AppendBookingMotive(
		ctx context.Context,
		bookingID uint,
		text string,
	) error

	AppendBookingInternalNote(
		ctx context.Context,
		bookingID uint,
		text string,
	) error
}
