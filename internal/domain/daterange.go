package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO date format accepted for statement bounds.
const DateLayout = "2006-01-02"

// DateRange is an inclusive day range. Either bound may be nil (open).
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange parses optional ISO dates (or RFC3339 timestamps, which
// are truncated to their UTC day).
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange

	f, err := parseDay(from)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: date_from: %v", ErrInvalidDateRange, err)
	}
	t, err := parseDay(to)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: date_to: %v", ErrInvalidDateRange, err)
	}

	r.From, r.To = f, t
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}

	return r, nil
}

func parseDay(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if d, err := time.Parse(DateLayout, s); err == nil {
		return &d, nil
	}

	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	d := truncateDay(ts)

	return &d, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Validate checks that From is not after To.
func (r DateRange) Validate() error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return fmt.Errorf("%w: date_from %s is after date_to %s",
			ErrInvalidDateRange, r.From.Format(DateLayout), r.To.Format(DateLayout))
	}
	return nil
}

// ToExclusive returns the instant just past the last included day.
func (r DateRange) ToExclusive() *time.Time {
	if r.To == nil {
		return nil
	}
	end := r.To.AddDate(0, 0, 1)
	return &end
}

// Contains reports whether t falls inside the range. Both bounds are inclusive.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if end := r.ToExclusive(); end != nil && !t.Before(*end) {
		return false
	}
	return true
}

// FetchWindow is what a store receives: the requested range plus the
// fetch-start instant. Rows created after AsOf are not read.
type FetchWindow struct {
	Range DateRange
	AsOf  time.Time
}

// From returns the inclusive lower bound, or nil.
func (w FetchWindow) From() *time.Time { return w.Range.From }

// Until returns the exclusive upper bound, or nil.
func (w FetchWindow) Until() *time.Time { return w.Range.ToExclusive() }
