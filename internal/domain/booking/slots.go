package booking

import (
	"time"

	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

// SlotStrideMin is the fixed stride between candidate slot starts.
const SlotStrideMin = 15

// Slot es un hueco candidato [Start, End) en horas de pared "HH:MM".
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BusyInterval is an occupied stretch of a worker's day, in minutes since
// midnight.
type BusyInterval struct {
	StartMin    int
	DurationMin int
}

// BusyFromBookings derives the busy intervals from the bookings that block
// a slot (pending / confirmed). Rows with malformed times are skipped.
func BusyFromBookings(bookings []models.Booking) []BusyInterval {
	busy := make([]BusyInterval, 0, len(bookings))
	for _, b := range bookings {
		if !Status(b.Status).Blocks() {
			continue
		}
		start, err := ParseClock(b.StartTime)
		if err != nil || b.DurationMin <= 0 {
			continue
		}
		busy = append(busy, BusyInterval{StartMin: start, DurationMin: b.DurationMin})
	}
	return busy
}

// GenerateSlots walks the working window in SlotStrideMin steps, from start
// up to end-duration inclusive, dropping candidates that overlap a busy
// interval. The result is ascending and recomputed fresh on every call.
//
// A nil or malformed window yields an empty sequence. Callers must validate
// durationMin > 0 before calling.
func GenerateSlots(window *TimeWindow, busy []BusyInterval, durationMin int) []Slot {
	slots := []Slot{}
	if window == nil {
		return slots
	}

	startMin, err := ParseClock(window.Start)
	if err != nil {
		return slots
	}
	endMin, err := ParseClock(window.End)
	if err != nil {
		return slots
	}

	for cur := startMin; cur+durationMin <= endMin; cur += SlotStrideMin {
		if !slotIsFree(cur, durationMin, busy) {
			continue
		}
		slots = append(slots, Slot{
			Start: FormatClock(cur),
			End:   FormatClock(cur + durationMin),
		})
	}

	return slots
}

func slotIsFree(startMin, durationMin int, busy []BusyInterval) bool {
	for _, b := range busy {
		if Overlaps(startMin, durationMin, b.StartMin, b.DurationMin) {
			return false
		}
	}
	return true
}

// GenerateSlotsForDate additionally consults the salon calendar: a closed
// weekday or a holiday yields no slots, and candidates outside the
// configured opening window are dropped.
func GenerateSlotsForDate(
	date time.Time,
	window *TimeWindow,
	busy []BusyInterval,
	durationMin int,
	cal *CalendarConfig,
	isHoliday bool,
) []Slot {

	if cal != nil && (isHoliday || !cal.IsOpeningDay(date)) {
		return []Slot{}
	}

	slots := GenerateSlots(window, busy, durationMin)
	if cal == nil {
		return slots
	}

	opensMin, err := ParseClock(cal.OpensAt)
	if err != nil {
		return slots
	}
	closesMin, err := ParseClock(cal.ClosesAt)
	if err != nil {
		return slots
	}

	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		startMin, err := ParseClock(s.Start)
		if err != nil {
			continue
		}
		if startMin >= opensMin && startMin+durationMin <= closesMin {
			out = append(out, s)
		}
	}

	return out
}
