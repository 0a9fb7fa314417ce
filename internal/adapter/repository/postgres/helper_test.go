package postgres

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/iho/partyledger/internal/domain"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func assertExpectations(t *testing.T, pool pgxmock.PgxPoolIface) {
	t.Helper()
	if err := pool.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func at(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var testAsOf = time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

func testWindow() domain.FetchWindow {
	return domain.FetchWindow{
		Range: domain.DateRange{From: at(2024, 1, 1), To: at(2024, 12, 31)},
		AsOf:  testAsOf,
	}
}

// testWindowArgs are the query arguments testWindow must produce: the
// first day inclusive, the day after date_to exclusive, then the as-of.
func testWindowArgs(partyArg any) []any {
	return []any{partyArg, timeArg{at(2024, 1, 1)}, timeArg{at(2025, 1, 1)}, testAsOf}
}

// timeArg matches a *time.Time query argument by instant; nil matches nil.
type timeArg struct {
	want *time.Time
}

func (a timeArg) Match(v any) bool {
	got, ok := v.(*time.Time)
	if !ok {
		return false
	}
	if a.want == nil || got == nil {
		return a.want == nil && got == nil
	}
	return got.Equal(*a.want)
}
