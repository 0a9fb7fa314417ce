package domain

import (
	"context"
	"errors"
	"time"
)

// Source health statuses.
const (
	SourceHealthy = "ok"
	SourceFailing = "failing"
	SourceUnknown = "unknown"
)

// Source failure kinds. They are the only failure detail exposed to
// callers; the underlying error text stays in the logs.
const (
	FailureTimeout     = "timeout"
	FailureCancelled   = "cancelled"
	FailureInvalidData = "invalid_data"
	FailurePanic       = "panic"
	FailureUnavailable = "unavailable"
)

// SourceHealth is the last observed state of one origin store.
type SourceHealth struct {
	Source              SourceType
	Status              string
	LastSuccessAt       *time.Time
	LastFailureAt       *time.Time
	LastFailureKind     string
	ConsecutiveFailures int64
}

// ClassifySourceFailure maps a fetch error to a failure kind.
func ClassifySourceFailure(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return FailureTimeout
	case errors.Is(err, context.Canceled):
		return FailureCancelled
	case errors.Is(err, ErrInvalidSourceData):
		return FailureInvalidData
	case errors.Is(err, ErrAdapterPanicked):
		return FailurePanic
	default:
		return FailureUnavailable
	}
}
