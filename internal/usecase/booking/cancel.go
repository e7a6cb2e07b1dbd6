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

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCancelBooking(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	slotCache *cache.AvailabilityCache,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: auditDisp,
		cache: slotCache,
	}
}

// Execute cancela la reserva y devuelve la penalización calculada según la
// política de cancelación. El cobro queda fuera: sólo se informa el importe.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, float64, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, 0, err
	}

	b, err := uc.repo.GetBookingForSalon(ctx, bookingID, salonID)
	if err != nil {
		return nil, 0, httperr.ErrBusiness("booking_not_found")
	}

	loc := timezone.Location(salon.Timezone)
	now := timezone.NowIn(salon.Timezone)

	var penalty float64
	if start, err := domain.ScheduledStart(b, loc); err == nil {
		penalty = domain.EvaluateCancellationPenalty(
			domain.CancellationPolicy(b.CancellationPolicy),
			b.Service.Price,
			start,
			now,
		)
	}

	if err := domain.Cancel(b, now); err != nil {
		return nil, 0, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, 0, err
	}

	if b.WorkerID != nil {
		uc.cache.InvalidateDay(ctx, salonID, *b.WorkerID, b.Date)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"penalty": penalty},
	})

	return b, penalty, nil
}
