package booking

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

// Categorías de primer nivel del salón.
const (
	CategoryHair      = "peluqueria"
	CategoryAesthetic = "estetica"

	// CategoryAny es el comodín: la profesional atiende cualquier servicio.
	CategoryAny = "ambas"
)

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeCategory lower-cases, strips diacritics and keeps only
// [a-z0-9 ], trimming surrounding whitespace.
func NormalizeCategory(s string) string {
	lowered := strings.ToLower(s)

	folded, _, err := transform.String(stripDiacritics, lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// CanPerform decide si una profesional de workerCategory puede atender un
// servicio de serviceCategory. Es un match por etiqueta, deliberadamente
// permisivo: el salón sólo tiene dos categorías de primer nivel con
// sub-especialidades en texto libre.
func CanPerform(workerCategory, serviceCategory string) bool {
	w := NormalizeCategory(workerCategory)
	s := NormalizeCategory(serviceCategory)

	if w == CategoryAny || w == "any" {
		return true
	}
	if w == "" || s == "" {
		return false
	}
	if w == s {
		return true
	}

	// etiquetas compuestas ("peluqueria y color" vs "color")
	return strings.Contains(w, s) || strings.Contains(s, w)
}

// FilterWorkersByCategory keeps the workers able to perform a service of
// the given category, preserving input order.
func FilterWorkersByCategory(workers []models.User, serviceCategory string) []models.User {
	out := make([]models.User, 0, len(workers))
	for _, w := range workers {
		if CanPerform(w.Category, serviceCategory) {
			out = append(out, w)
		}
	}
	return out
}

// ParseSpecialties parses the free-text comma separated specialties field
// into a normalized list, once, at the boundary.
func ParseSpecialties(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := NormalizeCategory(p); n != "" {
			out = append(out, n)
		}
	}
	return out
}
