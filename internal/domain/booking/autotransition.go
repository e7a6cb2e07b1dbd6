package booking

import (
	"time"

	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

// DefaultAutoRejectThreshold: una reserva pending cuyo inicio cae dentro de
// esta ventana (o ya pasó) se rechaza automáticamente.
const DefaultAutoRejectThreshold = 2 * time.Hour

// Anotaciones generadas por el sistema, distinguibles de las manuales.
const (
	AutoRejectMotive = "[sistema] rechazada automáticamente: sin confirmación a tiempo"
	AutoCompleteNote = "[sistema] completada automáticamente al finalizar el servicio"
)

// EligibleForAutoReject reports whether a pending booking's start is at or
// within threshold of now, or already past. Terminal bookings never match,
// which makes re-evaluation a no-op.
func EligibleForAutoReject(b *models.Booking, now time.Time, threshold time.Duration, loc *time.Location) bool {
	if Status(b.Status) != StatusPending {
		return false
	}

	start, err := ScheduledStart(b, loc)
	if err != nil {
		return false
	}

	return !start.After(now.Add(threshold))
}

// EligibleForAutoComplete reports whether a confirmed booking's end
// (start+duration) is at or before now.
func EligibleForAutoComplete(b *models.Booking, now time.Time, loc *time.Location) bool {
	if Status(b.Status) != StatusConfirmed {
		return false
	}

	end, err := ScheduledEnd(b, loc)
	if err != nil {
		return false
	}

	return !end.After(now)
}
