package models

import "time"

type Booking struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Ref string `gorm:"size:36;uniqueIndex" json:"ref"`

	SalonID uint  `json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// WorkerID queda en nil cuando el cliente no eligió profesional:
	// la reserva nace en pending_assignment.
	WorkerID *uint `json:"worker_id"`
	Worker   *User `gorm:"foreignKey:WorkerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"worker"`

	Date        time.Time `json:"date"`
	StartTime   string    `gorm:"size:5" json:"start_time"`
	DurationMin int       `json:"duration_min"`

	Status string `gorm:"size:24;default:'pending'" json:"status"`

	Notes         string `gorm:"size:255" json:"notes"`
	InternalNotes string `gorm:"type:text" json:"internal_notes"`
	Motive        string `gorm:"size:512" json:"motive"`

	CancellationPolicy string `gorm:"size:16;default:'flexible'" json:"cancellation_policy"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	RejectedAt  *time.Time `json:"rejected_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
