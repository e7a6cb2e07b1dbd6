package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Peluquería", "peluqueria"},
		{"ESTÉTICA", "estetica"},
		{"  ambas  ", "ambas"},
		{"peluquería y color", "peluqueria y color"},
		{"uñas!", "unas"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeCategory(tc.in), tc.in)
	}
}

func TestCanPerform(t *testing.T) {
	// comodín
	assert.True(t, CanPerform("ambas", "peluqueria"))
	assert.True(t, CanPerform("Ambas", "estética"))
	assert.True(t, CanPerform("any", "peluqueria"))

	// match exacto, con acentos normalizados
	assert.True(t, CanPerform("peluquería", "peluqueria"))
	assert.True(t, CanPerform("estetica", "Estética"))

	// categorías distintas
	assert.False(t, CanPerform("peluqueria", "estetica"))
	assert.False(t, CanPerform("estetica", "peluqueria"))

	// etiquetas compuestas
	assert.True(t, CanPerform("peluqueria y color", "color"))
	assert.True(t, CanPerform("color", "peluqueria y color"))

	// vacío nunca hace match (salvo comodín)
	assert.False(t, CanPerform("", "peluqueria"))
	assert.False(t, CanPerform("peluqueria", ""))
	assert.False(t, CanPerform("", ""))
}

func TestFilterWorkersByCategory(t *testing.T) {
	workers := []models.User{
		{ID: 1, Name: "Lucía", Category: "peluqueria"},
		{ID: 2, Name: "Marta", Category: "estetica"},
		{ID: 3, Name: "Sara", Category: "ambas"},
		{ID: 4, Name: "Eva", Category: "peluquería"},
	}

	got := FilterWorkersByCategory(workers, "peluqueria")

	ids := make([]uint, 0, len(got))
	for _, w := range got {
		ids = append(ids, w.ID)
	}
	// conserva el orden de entrada
	assert.Equal(t, []uint{1, 3, 4}, ids)

	assert.Empty(t, FilterWorkersByCategory(nil, "peluqueria"))
}

func TestParseSpecialties(t *testing.T) {
	assert.Equal(t,
		[]string{"color", "mechas", "unas"},
		ParseSpecialties("Color, Mechas , uñas"),
	)
	assert.Empty(t, ParseSpecialties(""))
	assert.Empty(t, ParseSpecialties(" , , "))
}
