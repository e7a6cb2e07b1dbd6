package booking

import (
	"strings"
	"time"
)

// dayNames mapea time.Weekday (0=domingo..6=sábado) al vocabulario del
// negocio, ya en forma normalizada.
var dayNames = [7]string{"domingo", "lunes", "martes", "miercoles", "jueves", "viernes", "sabado"}

// DayName returns the localized name of a date's weekday.
func DayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}

// CalendarConfig restringe los huecos más allá del horario individual de
// cada profesional: días de apertura, ventana diaria y festivos (los
// festivos se consultan aparte, vía repositorio).
type CalendarConfig struct {
	OpeningDays map[string]bool
	OpensAt     string
	ClosesAt    string
}

// NewCalendarConfig builds the calendar from a comma separated list of day
// names plus the salon's daily opening window.
func NewCalendarConfig(openingDays, opensAt, closesAt string) *CalendarConfig {
	days := make(map[string]bool, 7)
	for _, d := range strings.Split(openingDays, ",") {
		if n := NormalizeCategory(d); n != "" {
			days[n] = true
		}
	}

	return &CalendarConfig{
		OpeningDays: days,
		OpensAt:     opensAt,
		ClosesAt:    closesAt,
	}
}

func (c *CalendarConfig) IsOpeningDay(date time.Time) bool {
	return c.OpeningDays[DayName(date)]
}
