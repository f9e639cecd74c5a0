package video

import (
	"fmt"
	"math"
)

// Duration is a media duration in seconds as reported by the prober
type Duration float64

// DefaultDurationTolerance is the drift allowed between source and output
// before the report flags a mismatch. Covers AAC frame padding and container rounding.
const DefaultDurationTolerance Duration = 0.5

// String returns the duration in HH:MM:SS.mmm format
func (d Duration) String() string {
	if d < 0 {
		d = 0
	}
	totalMillis := int64(math.Round(float64(d) * 1000))
	hours := totalMillis / 3_600_000
	minutes := (totalMillis / 60_000) % 60
	seconds := (totalMillis / 1000) % 60
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// Seconds returns the duration as a float
func (d Duration) Seconds() float64 {
	return float64(d)
}

// Within reports whether d and other differ by at most tolerance
func (d Duration) Within(other, tolerance Duration) bool {
	return math.Abs(float64(d-other)) <= float64(tolerance)
}
