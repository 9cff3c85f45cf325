// Package age computes the elapsed-time values shown in task listings.
package age

import "time"

// AgeData returns how long ago createdAt was, and false when it is unset.
// Timestamps in the future clamp to zero.
func AgeData(createdAt time.Time, now time.Time) (time.Duration, bool) {
	if createdAt.IsZero() {
		return 0, false
	}
	return clamp(now.Sub(createdAt)), true
}

// DurationData returns the span from startedAt to completedAt, and false when
// either end is unset.
func DurationData(startedAt time.Time, completedAt time.Time) (time.Duration, bool) {
	if startedAt.IsZero() || completedAt.IsZero() {
		return 0, false
	}
	return clamp(completedAt.Sub(startedAt)), true
}

func clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
