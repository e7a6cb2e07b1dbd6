package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:15", 555},
		{"23:59", 1439},
		{" 10:30 ", 630},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "-1:00", "ab:cd", "12-30"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestFormatClock_RoundTrips(t *testing.T) {
	for min := 0; min < 24*60; min += 7 {
		got, err := ParseClock(FormatClock(min))
		require.NoError(t, err)
		assert.Equal(t, min, got)
	}
}

func TestOverlaps(t *testing.T) {
	// intervalos que se tocan no se solapan
	assert.False(t, Overlaps(540, 30, 570, 30))
	assert.False(t, Overlaps(570, 30, 540, 30))

	// solape parcial
	assert.True(t, Overlaps(540, 30, 555, 30))
	assert.True(t, Overlaps(555, 30, 540, 30))

	// contención
	assert.True(t, Overlaps(540, 120, 570, 15))
	assert.True(t, Overlaps(570, 15, 540, 120))

	// idénticos
	assert.True(t, Overlaps(540, 30, 540, 30))

	// disjuntos
	assert.False(t, Overlaps(540, 30, 600, 30))
}

func TestOverlaps_Symmetric(t *testing.T) {
	for s1 := 0; s1 < 120; s1 += 15 {
		for s2 := 0; s2 < 120; s2 += 15 {
			assert.Equal(t,
				Overlaps(s1, 30, s2, 45),
				Overlaps(s2, 45, s1, 30),
				"s1=%d s2=%d", s1, s2,
			)
		}
	}
}
