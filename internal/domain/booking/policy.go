package booking

import "time"

// ===============================
// Cancellation Policy
// ===============================

type CancellationPolicy string

const (
	PolicyFlexible CancellationPolicy = "flexible"
	PolicyModerate CancellationPolicy = "moderada"
	PolicyStrict   CancellationPolicy = "estricta"
)

func (p CancellationPolicy) Valid() bool {
	switch p {
	case PolicyFlexible, PolicyModerate, PolicyStrict:
		return true
	}
	return false
}

// EvaluateCancellationPenalty devuelve la penalización (o cero) por cancelar
// en now una reserva que empieza en start, para un servicio de precio price.
// Sólo calcula: nunca mueve dinero.
//
//	flexible  → siempre 0
//	moderada  → 50% dentro de las 24h previas
//	estricta  → 100% dentro de 24h, 50% dentro de 48h
func EvaluateCancellationPenalty(p CancellationPolicy, price float64, start, now time.Time) float64 {
	lead := start.Sub(now)

	switch p {
	case PolicyModerate:
		if lead < 24*time.Hour {
			return price * 0.5
		}
	case PolicyStrict:
		if lead < 24*time.Hour {
			return price
		}
		if lead < 48*time.Hour {
			return price * 0.5
		}
	}

	return 0
}
