package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayName(t *testing.T) {
	// 2025-01-05 es domingo
	sunday := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	want := []string{"domingo", "lunes", "martes", "miercoles", "jueves", "viernes", "sabado"}
	for i, name := range want {
		assert.Equal(t, name, DayName(sunday.AddDate(0, 0, i)))
	}
}

func TestCalendarConfig_IsOpeningDay(t *testing.T) {
	cal := NewCalendarConfig("lunes,martes,miércoles,jueves,viernes,sábado", "09:00", "20:00")

	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)

	assert.True(t, cal.IsOpeningDay(monday))
	assert.True(t, cal.IsOpeningDay(saturday)) // acentos normalizados
	assert.False(t, cal.IsOpeningDay(sunday))
}
