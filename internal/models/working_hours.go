package models

import "time"

// WorkingHours es la ventana de trabajo de una profesional para un día
// de la semana (0=domingo..6=sábado). Sin fila o sin Active, no trabaja.
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	WorkerID uint `gorm:"index" json:"worker_id"`

	Weekday int `json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
