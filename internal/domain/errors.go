package domain

import "errors"

var (
	// Input errors
	ErrLedgerTypeRequired    = errors.New("ledger type is required")
	ErrUnsupportedLedgerType = errors.New("unsupported ledger type")
	ErrPartyIDRequired       = errors.New("party id is required")
	ErrInvalidDateRange      = errors.New("invalid date range")

	// Lookup errors
	ErrPartyNotFound = errors.New("party not found")

	// Normalization errors
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrUndatedRecord          = errors.New("record has no document date")
	ErrNegativeAmount         = errors.New("amount must not be negative")
	ErrDuplicateEntry         = errors.New("duplicate ledger entry id")

	// Pipeline errors
	ErrSourceUnavailable  = errors.New("source unavailable")
	ErrInvalidSourceData  = errors.New("invalid source data")
	ErrAdapterPanicked    = errors.New("source adapter panicked")
	ErrStatementCancelled = errors.New("statement build cancelled")
)
