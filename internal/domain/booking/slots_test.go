package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

func TestGenerateSlots_NoBookings(t *testing.T) {
	window := &TimeWindow{Start: "09:00", End: "10:00"}

	got := GenerateSlots(window, nil, 30)

	assert.Equal(t, []Slot{
		{Start: "09:00", End: "09:30"},
		{Start: "09:15", End: "09:45"},
		{Start: "09:30", End: "10:00"},
	}, got)
}

func TestGenerateSlots_TouchingBookingDoesNotBlock(t *testing.T) {
	window := &TimeWindow{Start: "09:00", End: "10:00"}
	busy := []BusyInterval{{StartMin: 570, DurationMin: 30}} // 09:30-10:00

	got := GenerateSlots(window, busy, 30)

	// 09:00-09:30 toca la reserva pero no la pisa; 09:15 y 09:30 sí
	assert.Equal(t, []Slot{{Start: "09:00", End: "09:30"}}, got)
}

func TestGenerateSlots_MidWindowBookingBlocksNeighbors(t *testing.T) {
	window := &TimeWindow{Start: "09:00", End: "10:00"}
	busy := []BusyInterval{{StartMin: 555, DurationMin: 30}} // 09:15-09:45

	// los tres candidatos pisan 09:15-09:45
	assert.Empty(t, GenerateSlots(window, busy, 30))
}

func TestGenerateSlots_MalformedWindow(t *testing.T) {
	assert.Empty(t, GenerateSlots(nil, nil, 30))
	assert.Empty(t, GenerateSlots(&TimeWindow{Start: "9am", End: "10:00"}, nil, 30))
	assert.Empty(t, GenerateSlots(&TimeWindow{Start: "09:00", End: "bad"}, nil, 30))
}

func TestGenerateSlots_WindowTooShort(t *testing.T) {
	assert.Empty(t, GenerateSlots(&TimeWindow{Start: "09:00", End: "09:15"}, nil, 30))
}

func TestGenerateSlots_NeverOverlapsExisting(t *testing.T) {
	window := &TimeWindow{Start: "08:00", End: "20:00"}
	busy := []BusyInterval{
		{StartMin: 540, DurationMin: 45},
		{StartMin: 720, DurationMin: 60},
		{StartMin: 1050, DurationMin: 15},
	}

	slots := GenerateSlots(window, busy, 30)
	require.NotEmpty(t, slots)

	prev := -1
	for _, s := range slots {
		start, err := ParseClock(s.Start)
		require.NoError(t, err)

		// orden ascendente estricto
		assert.Greater(t, start, prev)
		prev = start

		for _, b := range busy {
			assert.False(t, Overlaps(start, 30, b.StartMin, b.DurationMin),
				"slot %s pisa la reserva que empieza en %d", s.Start, b.StartMin)
		}
	}
}

func TestBusyFromBookings(t *testing.T) {
	bookings := []models.Booking{
		{StartTime: "09:00", DurationMin: 30, Status: string(StatusPending)},
		{StartTime: "10:00", DurationMin: 30, Status: string(StatusConfirmed)},
		{StartTime: "11:00", DurationMin: 30, Status: string(StatusCancelled)},  // no bloquea
		{StartTime: "12:00", DurationMin: 30, Status: string(StatusRejected)},   // no bloquea
		{StartTime: "mala", DurationMin: 30, Status: string(StatusPending)},     // hora corrupta
		{StartTime: "13:00", DurationMin: 0, Status: string(StatusConfirmed)},   // duración corrupta
	}

	got := BusyFromBookings(bookings)

	assert.Equal(t, []BusyInterval{
		{StartMin: 540, DurationMin: 30},
		{StartMin: 600, DurationMin: 30},
	}, got)
}

func TestGenerateSlotsForDate_ClosedDay(t *testing.T) {
	cal := NewCalendarConfig("lunes,martes", "09:00", "20:00")
	window := &TimeWindow{Start: "09:00", End: "14:00"}
	sunday := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, GenerateSlotsForDate(sunday, window, nil, 30, cal, false))
}

func TestGenerateSlotsForDate_Holiday(t *testing.T) {
	cal := NewCalendarConfig("lunes,martes", "09:00", "20:00")
	window := &TimeWindow{Start: "09:00", End: "14:00"}
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, GenerateSlotsForDate(monday, window, nil, 30, cal, true))
}

func TestGenerateSlotsForDate_ClampsToOpeningWindow(t *testing.T) {
	cal := NewCalendarConfig("lunes", "09:00", "10:00")
	// la profesional trabaja más horas que las que abre el salón
	window := &TimeWindow{Start: "08:00", End: "12:00"}
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	got := GenerateSlotsForDate(monday, window, nil, 30, cal, false)

	assert.Equal(t, []Slot{
		{Start: "09:00", End: "09:30"},
		{Start: "09:15", End: "09:45"},
		{Start: "09:30", End: "10:00"},
	}, got)
}
