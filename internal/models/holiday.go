package models

import "time"

type Holiday struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Date  time.Time `gorm:"index" json:"date"`
	Label string    `gorm:"size:100" json:"label"`

	CreatedAt time.Time `json:"created_at"`
}
