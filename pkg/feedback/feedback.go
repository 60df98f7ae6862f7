// Package feedback defines persisted feedback submissions.
package feedback

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is one submission: what the user liked and what to improve.
// Either field may be empty, not both.
type Feedback struct {
	ID        string `json:"id"`
	Good      string `json:"good"`
	Improve   string `json:"improve"`
	CreatedAt int64  `json:"createdAt"` // epoch millis
}

// New stamps a submission with a fresh id and creation time.
func New(good, improve string, now time.Time) Feedback {
	return Feedback{
		ID:        uuid.NewString(),
		Good:      good,
		Improve:   improve,
		CreatedAt: now.UnixMilli(),
	}
}
