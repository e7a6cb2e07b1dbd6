package booking

import "github.com/VioletaEstudio/salon-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPendingAssignment Status = "pending_assignment"
	StatusPending           Status = "pending"
	StatusConfirmed         Status = "confirmed"
	StatusRejected          Status = "rejected"
	StatusCancelled         Status = "cancelled"
	StatusCompleted         Status = "completed"
)

// IsTerminal: ninguna transición sale de un estado terminal.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

// Blocks reports whether a booking in this state occupies its time window
// for conflict and slot-generation purposes.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) Valid() bool {
	switch s {
	case StatusPendingAssignment, StatusPending, StatusConfirmed,
		StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanAssign define si se puede asignar profesional a la reserva
func CanAssign(current Status) error {
	if current != StatusPendingAssignment {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanConfirm define si una reserva puede ser confirmada
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReject define si una reserva puede ser rechazada
func CanReject(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define si una reserva puede ser cancelada
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define si una reserva puede marcarse completada
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus valida el estado inicial según si hay profesional elegida
func InitialStatus(hasWorker bool) Status {
	if hasWorker {
		return StatusPending
	}
	return StatusPendingAssignment
}
