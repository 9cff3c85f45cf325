package task

import (
	"time"

	internalage "github.com/amonks/taskvault/internal/age"
)

// DurationData computes how long a completed task took from creation.
func DurationData(item Task) (time.Duration, bool) {
	if item.Status != StatusCompleted || item.CompletedAt == nil {
		return 0, false
	}
	return internalage.DurationData(item.CreatedAt, *item.CompletedAt)
}
