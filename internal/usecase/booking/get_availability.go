package booking

import (
	"context"

	"github.com/VioletaEstudio/salon-scheduler/internal/cache"
	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, slotCache *cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: slotCache}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	if slots, ok := uc.cache.Get(ctx, in); ok {
		return slots, nil
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if service.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	worker, err := uc.repo.GetWorker(ctx, in.SalonID, in.WorkerID)
	if err != nil {
		return nil, httperr.ErrBusiness("worker_not_found")
	}
	if !domain.CanPerform(worker.Category, service.Category) {
		return nil, httperr.ErrBusiness("worker_cannot_perform_service")
	}

	weekday := int(in.Date.Weekday())

	wh, err := uc.repo.GetWorkingHours(ctx, in.WorkerID, weekday)
	if err != nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		// sin horario ese día no es un error: simplemente no hay huecos
		return []domain.Slot{}, nil
	}
	window := &domain.TimeWindow{Start: wh.StartTime, End: wh.EndTime}

	bookings, err := uc.repo.ListBookingsForWorkerDay(ctx, in.WorkerID, in.Date)
	if err != nil {
		return nil, err
	}

	holiday, err := uc.repo.IsHoliday(ctx, in.SalonID, in.Date)
	if err != nil {
		return nil, err
	}

	cal := domain.NewCalendarConfig(salon.OpeningDays, salon.OpensAt, salon.ClosesAt)

	slots := domain.GenerateSlotsForDate(
		in.Date,
		window,
		domain.BusyFromBookings(bookings),
		service.DurationMin,
		cal,
		holiday,
	)

	uc.cache.Set(ctx, in, slots)

	return slots, nil
}
