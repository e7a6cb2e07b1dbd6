package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VioletaEstudio/salon-scheduler/internal/audit"
	"github.com/VioletaEstudio/salon-scheduler/internal/cache"
	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/httperr"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
	"github.com/VioletaEstudio/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SalonID uint

	// WorkerID en nil crea la reserva en pending_assignment.
	WorkerID *uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date   string
	Time   string
	Notes  string
	Policy string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCreateBooking(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	slotCache *cache.AvailabilityCache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: auditDisp,
		cache: slotCache,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)

	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	startMin, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	start := day.Add(time.Duration(startMin) * time.Minute)

	// --------------------------------------------------
	// Antelación mínima
	// --------------------------------------------------
	minAdvance := salon.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(salon.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// Servicio
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if service.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	endMin := startMin + service.DurationMin

	// --------------------------------------------------
	// Calendario del salón
	// --------------------------------------------------
	cal := domain.NewCalendarConfig(salon.OpeningDays, salon.OpensAt, salon.ClosesAt)
	if !cal.IsOpeningDay(day) {
		return nil, httperr.ErrBusiness("salon_closed")
	}

	holiday, err := uc.repo.IsHoliday(ctx, in.SalonID, day)
	if err != nil {
		return nil, err
	}
	if holiday {
		return nil, httperr.ErrBusiness("salon_closed")
	}

	if opensMin, err := domain.ParseClock(salon.OpensAt); err == nil {
		if closesMin, err := domain.ParseClock(salon.ClosesAt); err == nil {
			if startMin < opensMin || endMin > closesMin {
				return nil, httperr.ErrBusiness("outside_opening_hours")
			}
		}
	}

	// --------------------------------------------------
	// Política de cancelación
	// --------------------------------------------------
	policy := in.Policy
	if policy == "" {
		policy = salon.DefaultPolicy
	}
	if !domain.CancellationPolicy(policy).Valid() {
		return nil, httperr.ErrBusiness("invalid_cancellation_policy")
	}

	// --------------------------------------------------
	// Profesional (si fue elegida)
	// --------------------------------------------------
	if in.WorkerID != nil {
		worker, err := uc.repo.GetWorker(ctx, in.SalonID, *in.WorkerID)
		if err != nil {
			return nil, httperr.ErrBusiness("worker_not_found")
		}

		if !domain.CanPerform(worker.Category, service.Category) {
			return nil, httperr.ErrBusiness("worker_cannot_perform_service")
		}

		wh, err := uc.repo.GetWorkingHours(ctx, worker.ID, int(day.Weekday()))
		if err != nil || !wh.Active {
			return nil, httperr.ErrBusiness("outside_working_hours")
		}

		whStart, err1 := domain.ParseClock(wh.StartTime)
		whEnd, err2 := domain.ParseClock(wh.EndTime)
		if err1 != nil || err2 != nil || startMin < whStart || endMin > whEnd {
			return nil, httperr.ErrBusiness("outside_working_hours")
		}

		if err := uc.repo.AssertNoTimeConflict(
			ctx,
			worker.ID,
			day,
			startMin,
			service.DurationMin,
		); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Creación de la reserva (estado centralizado)
	// --------------------------------------------------
	b := &models.Booking{
		Ref:                uuid.NewString(),
		SalonID:            in.SalonID,
		ClientID:           client.ID,
		ServiceID:          service.ID,
		WorkerID:           in.WorkerID,
		Date:               day,
		StartTime:          domain.FormatClock(startMin),
		DurationMin:        service.DurationMin,
		Status:             string(domain.InitialStatus(in.WorkerID != nil)),
		Notes:              in.Notes,
		CancellationPolicy: policy,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	if in.WorkerID != nil {
		uc.cache.InvalidateDay(ctx, in.SalonID, *in.WorkerID, day)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
