package usecase

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
)

// ErrUnreconciledStatement is returned when the closing balance differs
// from total debits minus total credits.
var ErrUnreconciledStatement = errors.New("statement does not reconcile")

// ReconciliationResult compares the running balance with column totals.
type ReconciliationResult struct {
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	Expected       decimal.Decimal
	ClosingBalance decimal.Decimal
	Difference     decimal.Decimal
	IsReconciled   bool
}

// ReconcileEntries checks balanced entries, in the given display order,
// against their own column totals.
func ReconcileEntries(entries []domain.LedgerEntry, order domain.DisplayOrder) ReconciliationResult {
	totalDebit, totalCredit := Totals(entries)
	expected := totalDebit.Sub(totalCredit)
	closing := ClosingBalance(entries, order)
	diff := closing.Sub(expected)

	return ReconciliationResult{
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		Expected:       expected,
		ClosingBalance: closing,
		Difference:     diff,
		IsReconciled:   diff.IsZero(),
	}
}

// Err returns ErrUnreconciledStatement with the figures if r does not reconcile.
func (r ReconciliationResult) Err() error {
	if r.IsReconciled {
		return nil
	}
	return fmt.Errorf(
		"%w: debits=%s credits=%s closing=%s difference=%s",
		ErrUnreconciledStatement,
		r.TotalDebit.String(),
		r.TotalCredit.String(),
		r.ClosingBalance.String(),
		r.Difference.String(),
	)
}
