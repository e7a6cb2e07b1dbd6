package models

import "time"

type Salon struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:64" json:"timezone"`

	// Calendario del negocio: días de apertura (nombres en español,
	// separados por coma) y ventana diaria de atención.
	OpeningDays string `gorm:"size:128;default:'lunes,martes,miercoles,jueves,viernes,sabado'" json:"opening_days"`
	OpensAt     string `gorm:"size:5;default:'09:00'" json:"opens_at"`
	ClosesAt    string `gorm:"size:5;default:'20:00'" json:"closes_at"`

	MinAdvanceMinutes int    `gorm:"default:120" json:"min_advance_minutes"`
	DefaultPolicy     string `gorm:"size:16;default:'flexible'" json:"default_policy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
