package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warning codes attached to partial statements.
const (
	WarnSourceUnavailable      = "source_unavailable"
	WarnUnknownTransactionType = "unknown_transaction_type"
	WarnUndatedRecord          = "undated_record"
	WarnInvalidAmount          = "invalid_amount"
	WarnDuplicateEntry         = "duplicate_entry"
)

// Warning reports a source or record that did not make it into a statement.
type Warning struct {
	Source   SourceType
	Code     string
	RecordID string
	Message  string
}

// DisplayOrder is the order entries are returned in. Balances are always
// computed chronologically regardless of display order.
type DisplayOrder string

const (
	NewestFirst DisplayOrder = "desc"
	OldestFirst DisplayOrder = "asc"
)

// ParseDisplayOrder defaults to NewestFirst.
func ParseDisplayOrder(s string) DisplayOrder {
	if DisplayOrder(s) == OldestFirst {
		return OldestFirst
	}
	return NewestFirst
}

// Statement is a party's reconstructed ledger for one request. It has no
// persisted identity.
type Statement struct {
	Party        Party
	Entries      []LedgerEntry
	DateRange    DateRange
	Order        DisplayOrder
	EntryCount   int
	Warnings     []Warning
	SourceCounts map[SourceType]int

	// AsOf is the fetch-start instant. Sources are read without a shared
	// snapshot, so the statement reflects each store as of roughly this time.
	AsOf time.Time

	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	ClosingBalance decimal.Decimal
	Reconciled     bool
}

// Partial reports whether any source or record was left out.
func (s *Statement) Partial() bool {
	return len(s.Warnings) > 0
}
