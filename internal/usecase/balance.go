package usecase

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
)

// compareChronological orders by (date, id). The id tie-break makes
// same-day ordering deterministic.
func compareChronological(a, b domain.LedgerEntry) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

// ComputeRunningBalances returns a copy of entries sorted chronologically
// with Balance set to the cumulative debit minus credit up to and including
// each entry, then arranged in the requested display order. The input is
// not modified.
func ComputeRunningBalances(entries []domain.LedgerEntry, order domain.DisplayOrder) []domain.LedgerEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, compareChronological)

	running := decimal.Zero
	for i := range out {
		running = running.Add(out[i].DebitAmount).Sub(out[i].CreditAmount)
		out[i].Balance = running
	}

	if order != domain.OldestFirst {
		slices.Reverse(out)
	}

	return out
}

// Totals sums debit and credit columns.
func Totals(entries []domain.LedgerEntry) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit, totalCredit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.DebitAmount)
		totalCredit = totalCredit.Add(e.CreditAmount)
	}
	return totalDebit, totalCredit
}

// ClosingBalance returns the balance of the chronologically last entry.
func ClosingBalance(entries []domain.LedgerEntry, order domain.DisplayOrder) decimal.Decimal {
	if len(entries) == 0 {
		return decimal.Zero
	}
	if order == domain.OldestFirst {
		return entries[len(entries)-1].Balance
	}
	return entries[0].Balance
}
