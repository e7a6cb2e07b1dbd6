package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancellationPolicy_Valid(t *testing.T) {
	assert.True(t, PolicyFlexible.Valid())
	assert.True(t, PolicyModerate.Valid())
	assert.True(t, PolicyStrict.Valid())
	assert.False(t, CancellationPolicy("gratis").Valid())
	assert.False(t, CancellationPolicy("").Valid())
}

func TestEvaluateCancellationPenalty(t *testing.T) {
	start := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	price := 40.0

	hoursBefore := func(h int) time.Time {
		return start.Add(-time.Duration(h) * time.Hour)
	}

	// flexible nunca penaliza
	assert.Zero(t, EvaluateCancellationPenalty(PolicyFlexible, price, start, hoursBefore(1)))
	assert.Zero(t, EvaluateCancellationPenalty(PolicyFlexible, price, start, hoursBefore(72)))

	// moderada: 50% dentro de las 24h previas
	assert.Equal(t, 20.0, EvaluateCancellationPenalty(PolicyModerate, price, start, hoursBefore(3)))
	assert.Zero(t, EvaluateCancellationPenalty(PolicyModerate, price, start, hoursBefore(25)))
	assert.Zero(t, EvaluateCancellationPenalty(PolicyModerate, price, start, hoursBefore(24)))

	// estricta: 100% dentro de 24h, 50% dentro de 48h
	assert.Equal(t, 40.0, EvaluateCancellationPenalty(PolicyStrict, price, start, hoursBefore(3)))
	assert.Equal(t, 20.0, EvaluateCancellationPenalty(PolicyStrict, price, start, hoursBefore(36)))
	assert.Zero(t, EvaluateCancellationPenalty(PolicyStrict, price, start, hoursBefore(49)))
	assert.Zero(t, EvaluateCancellationPenalty(PolicyStrict, price, start, hoursBefore(48)))
}
