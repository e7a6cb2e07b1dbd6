package booking

import "time"

type AvailabilityInput struct {
	SalonID   uint
	WorkerID  uint
	ServiceID uint
	Date      time.Time
}
