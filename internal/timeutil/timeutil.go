// Package timeutil provides utility functions for working with
// time-related operations.
package timeutil

import "fmt"

const secondsInAMinute = 60

// FormatClock renders a seconds value as an MM:SS countdown. Negative
// values are clamped to zero.
func FormatClock(secs int64) string {
	if secs < 0 {
		secs = 0
	}

	return fmt.Sprintf(
		"%02d:%02d",
		secs/secondsInAMinute,
		secs%secondsInAMinute,
	)
}
