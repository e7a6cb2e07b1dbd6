package booking

import (
	"context"

	"github.com/VioletaEstudio/salon-scheduler/internal/audit"
	"github.com/VioletaEstudio/salon-scheduler/internal/cache"
	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/httperr"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

// AssignWorker mueve una reserva de pending_assignment a pending dándole
// profesional, validando capacidad y solape.
type AssignWorker struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewAssignWorker(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	slotCache *cache.AvailabilityCache,
) *AssignWorker {
	return &AssignWorker{
		repo:  repo,
		audit: auditDisp,
		cache: slotCache,
	}
}

func (uc *AssignWorker) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	bookingID uint,
	workerID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForSalon(ctx, bookingID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	worker, err := uc.repo.GetWorker(ctx, salonID, workerID)
	if err != nil {
		return nil, httperr.ErrBusiness("worker_not_found")
	}

	if !domain.CanPerform(worker.Category, b.Service.Category) {
		return nil, httperr.ErrBusiness("worker_cannot_perform_service")
	}

	startMin, err := domain.ParseClock(b.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		workerID,
		b.Date,
		startMin,
		b.DurationMin,
	); err != nil {
		return nil, err
	}

	if err := domain.Assign(b, workerID); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, salonID, workerID, b.Date)

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "booking_worker_assigned",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
