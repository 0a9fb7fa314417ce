package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
)

// Querier is the read surface the repositories need. *pgxpool.Pool
// satisfies it, as does pgxmock in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// windowPredicate bounds a document date column by the fetch window.
// It expects $2 (from, inclusive), $3 (until, exclusive) and $4 (as-of).
// Cancelled documents never reach a statement.
func windowPredicate(dateColumn string) string {
	return `($2::timestamptz IS NULL OR ` + dateColumn + ` >= $2)
   AND ($3::timestamptz IS NULL OR ` + dateColumn + ` < $3)
   AND created_at <= $4
   AND status <> 'cancelled'`
}

// ErrNonFiniteAmount is returned for NaN or infinite NUMERIC amounts.
var ErrNonFiniteAmount = fmt.Errorf("%w: non-finite amount", domain.ErrInvalidSourceData)

// numericToDecimal converts a NUMERIC column. NULL is zero; NaN and
// infinities are errors since they have no place in a balance.
func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Zero, nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return decimal.Zero, ErrNonFiniteAmount
	}

	d, err := decimal.NewFromString(n.Int.String())
	if err != nil {
		return decimal.Zero, err
	}

	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d, nil
}

// amountReader converts the amount columns of one row and keeps the
// first failure.
type amountReader struct {
	err error
}

func (r *amountReader) read(column string, n pgtype.Numeric) decimal.Decimal {
	d, err := numericToDecimal(n)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s: %w", column, err)
	}
	return d
}

// check wraps the first conversion failure with the row identity.
func (r *amountReader) check(table, id string) error {
	if r.err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", table, id, r.err)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
