package usecase

import (
	"fmt"

	"github.com/iho/partyledger/internal/domain"
)

type side int

const (
	debit side = iota + 1
	credit
)

// signTable is the only place a transaction's sign is decided.
var signTable = map[domain.PartyKind]map[domain.TransactionType]side{
	domain.PartyCustomer: {
		domain.TxInvoice:  debit,
		domain.TxDiscount: credit,
		domain.TxFreight:  debit,
		domain.TxPayment:  credit,
	},
	domain.PartySupplier: {
		domain.TxBill:    credit,
		domain.TxTax:     credit,
		domain.TxPayment: debit,
		domain.TxExpense: credit,
	},
	domain.PartyEmployee: {
		domain.TxSalary:     credit,
		domain.TxPayrollNet: credit,
		domain.TxDeduction:  debit,
		domain.TxExpense:    debit,
		domain.TxPayroll:    debit,
	},
}

// Normalizer maps raw source records to ledger entries.
type Normalizer struct {
	table map[domain.PartyKind]map[domain.TransactionType]side
}

// NewNormalizer creates a Normalizer backed by the standard sign table.
func NewNormalizer() *Normalizer {
	return &Normalizer{table: signTable}
}

// EntryID derives the statement-unique id of a record line.
func EntryID(source domain.SourceType, recordID, suffix string) string {
	id := string(source) + ":" + recordID
	if suffix != "" {
		id += ":" + suffix
	}
	return id
}

// Normalize converts one record into one entry per line. A record is
// accepted or rejected as a whole: if any line has no sign for kind, or
// the record has no document date, no entries are returned.
func (n *Normalizer) Normalize(kind domain.PartyKind, record domain.RawSourceRecord) ([]domain.LedgerEntry, error) {
	signs, ok := n.table[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLedgerType, kind)
	}

	date := record.DocumentDate()
	if date == nil || date.IsZero() {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrUndatedRecord, record.Source(), record.RecordID())
	}

	lines := record.Lines()
	entries := make([]domain.LedgerEntry, 0, len(lines))
	for _, line := range lines {
		s, ok := signs[line.Type]
		if !ok {
			return nil, fmt.Errorf("%w: %q for %s", domain.ErrUnknownTransactionType, line.Type, kind)
		}
		if err := domain.ValidateLineAmount(line.Amount); err != nil {
			return nil, err
		}

		entry := domain.LedgerEntry{
			ID:              EntryID(record.Source(), record.RecordID(), line.Suffix),
			Date:            date.UTC(),
			Description:     line.Description,
			Reference:       line.Reference,
			TransactionType: line.Type,
			Source:          record.Source(),
			SourceDocument:  record.DocumentLabel(),
			DocumentID:      record.RecordID(),
			Status:          record.RecordStatus(),
		}
		switch s {
		case debit:
			entry.DebitAmount = line.Amount
		case credit:
			entry.CreditAmount = line.Amount
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
