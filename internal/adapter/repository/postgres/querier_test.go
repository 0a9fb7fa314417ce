package postgres

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func TestNumericToDecimal(t *testing.T) {
	n := pgtype.Numeric{Int: big.NewInt(12345), Exp: -2, Valid: true}
	got, err := numericToDecimal(n)
	if err != nil || !got.Equal(decimal.RequireFromString("123.45")) {
		t.Fatalf("expected 123.45, got %s (err %v)", got, err)
	}

	got, err = numericToDecimal(pgtype.Numeric{})
	if err != nil || !got.IsZero() {
		t.Fatalf("expected zero for NULL numeric, got %s (err %v)", got, err)
	}
}

func TestNumericToDecimalRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		n    pgtype.Numeric
	}{
		{"nan", pgtype.Numeric{NaN: true, Valid: true}},
		{"infinity", pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}},
		{"negative infinity", pgtype.Numeric{InfinityModifier: pgtype.NegativeInfinity, Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := numericToDecimal(tt.n); !errors.Is(err, ErrNonFiniteAmount) {
				t.Fatalf("expected ErrNonFiniteAmount, got %v", err)
			}
		})
	}
}

func TestAmountReaderKeepsFirstFailure(t *testing.T) {
	var r amountReader

	r.read("final_price", pgtype.Numeric{NaN: true, Valid: true})
	r.read("discount_amount", pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true})
	if got := r.read("freight_charges", pgtype.Numeric{Int: big.NewInt(5), Valid: true}); !got.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("valid column should still convert, got %s", got)
	}

	err := r.check("sales_orders", "so-1")
	if !errors.Is(err, ErrNonFiniteAmount) {
		t.Fatalf("expected ErrNonFiniteAmount, got %v", err)
	}
	if want := "sales_orders so-1: final_price"; !strings.HasPrefix(err.Error(), want) {
		t.Fatalf("expected %q prefix, got %q", want, err.Error())
	}

	var clean amountReader
	if err := clean.check("sales_orders", "so-2"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestWindowPredicateExcludesCancelled(t *testing.T) {
	pred := windowPredicate("bill_date")

	for _, want := range []string{"bill_date >= $2", "bill_date < $3", "created_at <= $4", "status <> 'cancelled'"} {
		if !strings.Contains(pred, want) {
			t.Fatalf("predicate %q missing %q", pred, want)
		}
	}
}
