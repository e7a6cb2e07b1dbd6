package booking

import (
	"strings"
	"time"

	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Assign(b *models.Booking, workerID uint) error {
	if err := CanAssign(Status(b.Status)); err != nil {
		return err
	}

	b.WorkerID = &workerID
	b.Status = string(StatusPending)
	return nil
}

func Confirm(b *models.Booking, now time.Time) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func Reject(b *models.Booking, motive string, now time.Time) error {
	if err := CanReject(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusRejected)
	b.RejectedAt = &now
	b.Motive = AppendNote(b.Motive, motive)
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// AppendNote concatena anotaciones sin perder las anteriores.
func AppendNote(existing, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return existing
	}
	if existing == "" {
		return text
	}
	return existing + " | " + text
}

// ===============================
// Scheduling helpers
// ===============================

// ScheduledStart composes the booking's wall-clock start in loc.
func ScheduledStart(b *models.Booking, loc *time.Location) (time.Time, error) {
	min, err := ParseClock(b.StartTime)
	if err != nil {
		return time.Time{}, err
	}

	d := b.Date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), min/60, min%60, 0, 0, loc), nil
}

// ScheduledEnd is ScheduledStart plus the service duration.
func ScheduledEnd(b *models.Booking, loc *time.Location) (time.Time, error) {
	start, err := ScheduledStart(b, loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(b.DurationMin) * time.Minute), nil
}
