package booking

import (
	"context"

	"github.com/VioletaEstudio/salon-scheduler/internal/audit"
	"github.com/VioletaEstudio/salon-scheduler/internal/cache"
	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/httperr"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
	"github.com/VioletaEstudio/salon-scheduler/internal/timezone"
)

type RejectBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewRejectBooking(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	slotCache *cache.AvailabilityCache,
) *RejectBooking {
	return &RejectBooking{
		repo:  repo,
		audit: auditDisp,
		cache: slotCache,
	}
}

func (uc *RejectBooking) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	bookingID uint,
	motive string,
) (*models.Booking, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingForSalon(ctx, bookingID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Reject(b, motive, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if b.WorkerID != nil {
		uc.cache.InvalidateDay(ctx, salonID, *b.WorkerID, b.Date)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "booking_rejected",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
