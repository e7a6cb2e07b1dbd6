package dto

import (
	"time"

	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

type BookingListDTO struct {
	ID          uint      `json:"id"`
	Ref         string    `json:"ref"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	WorkerName  string    `json:"worker_name"`
}

// BookingList proyecta las reservas al DTO de listado. EndTime es derivado
// (inicio + duración); una hora malformada deja el campo vacío.
func BookingList(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		end := ""
		if startMin, err := domain.ParseClock(b.StartTime); err == nil {
			end = domain.FormatClock(startMin + b.DurationMin)
		}

		workerName := ""
		if b.Worker != nil {
			workerName = b.Worker.Name
		}

		out = append(out, BookingListDTO{
			ID:          b.ID,
			Ref:         b.Ref,
			Date:        b.Date,
			StartTime:   b.StartTime,
			EndTime:     end,
			Status:      b.Status,
			ClientName:  b.Client.Name,
			ServiceName: b.Service.Name,
			WorkerName:  workerName,
		})
	}
	return out
}
