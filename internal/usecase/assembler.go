package usecase

import (
	"time"

	"github.com/iho/partyledger/internal/domain"
)

// AssembleStatement packages balanced entries with their metadata.
func AssembleStatement(
	party domain.Party,
	rng domain.DateRange,
	order domain.DisplayOrder,
	asOf time.Time,
	entries []domain.LedgerEntry,
	warnings []domain.Warning,
	counts map[domain.SourceType]int,
) *domain.Statement {
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	if counts == nil {
		counts = map[domain.SourceType]int{}
	}

	rec := ReconcileEntries(entries, order)

	return &domain.Statement{
		Party:          party,
		Entries:        entries,
		DateRange:      rng,
		Order:          order,
		EntryCount:     len(entries),
		Warnings:       warnings,
		SourceCounts:   counts,
		AsOf:           asOf,
		TotalDebit:     rec.TotalDebit,
		TotalCredit:    rec.TotalCredit,
		ClosingBalance: rec.ClosingBalance,
		Reconciled:     rec.IsReconciled,
	}
}
