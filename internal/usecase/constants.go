package usecase

import "time"

const (
	// DefaultStatementTimeout bounds a whole statement build, fan-out included.
	DefaultStatementTimeout = 15 * time.Second

	// Statement outcomes reported to the observer.
	OutcomeComplete  = "complete"
	OutcomePartial   = "partial"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)
