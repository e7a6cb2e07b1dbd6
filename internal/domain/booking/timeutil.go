package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeWindow es una ventana de trabajo en horas de pared "HH:MM".
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseClock converts an "HH:MM" value to minutes since midnight.
// Malformed input is a caller error and fails fast.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}

	hh, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}

	mm, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}

	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}

	return hh*60 + mm, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Overlaps reports whether the half-open intervals [start1, start1+dur1)
// and [start2, start2+dur2) intersect. Touching endpoints do not overlap.
func Overlaps(start1, dur1, start2, dur2 int) bool {
	return start1 < start2+dur2 && start1+dur1 > start2
}
