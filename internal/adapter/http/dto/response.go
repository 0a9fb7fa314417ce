package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
)

// LedgerEntryResponse represents one statement line in API responses.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"reference_number"`
	TransactionType string          `json:"transaction_type"`
	DebitAmount     decimal.Decimal `json:"debit_amount"`
	CreditAmount    decimal.Decimal `json:"credit_amount"`
	Balance         decimal.Decimal `json:"balance"`
	SourceDocument  string          `json:"source_document"`
	Source          string          `json:"source"`
	Status          string          `json:"status"`
	DocumentID      string          `json:"document_id"`
}

// LedgerEntryFromDomain converts a domain ledger entry to response.
func LedgerEntryFromDomain(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:              e.ID,
		Date:            e.Date.UTC().Format(domain.DateLayout),
		Description:     e.Description,
		ReferenceNumber: e.Reference,
		TransactionType: string(e.TransactionType),
		DebitAmount:     e.DebitAmount,
		CreditAmount:    e.CreditAmount,
		Balance:         e.Balance,
		SourceDocument:  e.SourceDocument,
		Source:          string(e.Source),
		Status:          e.Status,
		DocumentID:      e.DocumentID,
	}
}

// DateRangeResponse echoes the requested bounds; nil means open.
type DateRangeResponse struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// WarningResponse describes a source or record left out of a statement.
type WarningResponse struct {
	Source   string `json:"source"`
	Code     string `json:"code"`
	RecordID string `json:"record_id,omitempty"`
	Error    string `json:"error"`
}

// StatementMeta carries the statement summary.
type StatementMeta struct {
	LedgerID         string            `json:"ledger_id"`
	LedgerType       string            `json:"ledger_type"`
	PartyName        string            `json:"party_name"`
	TransactionCount int               `json:"transaction_count"`
	DateRange        DateRangeResponse `json:"date_range"`
	Order            string            `json:"order"`
	AsOf             time.Time         `json:"as_of"`
	TotalDebit       decimal.Decimal   `json:"total_debit"`
	TotalCredit      decimal.Decimal   `json:"total_credit"`
	ClosingBalance   decimal.Decimal   `json:"closing_balance"`
	Reconciled       bool              `json:"reconciled"`
	Sources          map[string]int    `json:"sources"`
	Warnings         []WarningResponse `json:"warnings,omitempty"`
}

// StatementResponse is the statement envelope.
type StatementResponse struct {
	Success bool                  `json:"success"`
	Data    []LedgerEntryResponse `json:"data"`
	Meta    StatementMeta         `json:"meta"`
}

// StatementFromDomain converts a domain statement to response.
func StatementFromDomain(s *domain.Statement) StatementResponse {
	data := make([]LedgerEntryResponse, len(s.Entries))
	for i, e := range s.Entries {
		data[i] = LedgerEntryFromDomain(e)
	}

	sources := make(map[string]int, len(s.SourceCounts))
	for source, n := range s.SourceCounts {
		sources[string(source)] = n
	}

	var warnings []WarningResponse
	for _, w := range s.Warnings {
		warnings = append(warnings, WarningResponse{
			Source:   string(w.Source),
			Code:     w.Code,
			RecordID: w.RecordID,
			Error:    w.Message,
		})
	}

	return StatementResponse{
		Success: true,
		Data:    data,
		Meta: StatementMeta{
			LedgerID:         s.Party.ID,
			LedgerType:       string(s.Party.Kind),
			PartyName:        s.Party.Name,
			TransactionCount: s.EntryCount,
			DateRange: DateRangeResponse{
				From: formatDay(s.DateRange.From),
				To:   formatDay(s.DateRange.To),
			},
			Order:          string(s.Order),
			AsOf:           s.AsOf.UTC(),
			TotalDebit:     s.TotalDebit,
			TotalCredit:    s.TotalCredit,
			ClosingBalance: s.ClosingBalance,
			Reconciled:     s.Reconciled,
			Sources:        sources,
			Warnings:       warnings,
		},
	}
}

func formatDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(domain.DateLayout)
	return &s
}

// SourceHealthResponse represents one source's recorded health.
type SourceHealthResponse struct {
	Source              string     `json:"source"`
	Status              string     `json:"status"`
	LastSuccessAt       *time.Time `json:"last_success_at,omitempty"`
	LastFailureAt       *time.Time `json:"last_failure_at,omitempty"`
	LastFailureKind     string     `json:"last_failure_kind,omitempty"`
	ConsecutiveFailures int64      `json:"consecutive_failures"`
}

// SourceHealthListResponse is the source health envelope.
type SourceHealthListResponse struct {
	Success bool                   `json:"success"`
	Data    []SourceHealthResponse `json:"data"`
}

// SourceHealthFromDomain converts recorded source health to response.
func SourceHealthFromDomain(items []domain.SourceHealth) SourceHealthListResponse {
	data := make([]SourceHealthResponse, len(items))
	for i, h := range items {
		data[i] = SourceHealthResponse{
			Source:              string(h.Source),
			Status:              h.Status,
			LastSuccessAt:       h.LastSuccessAt,
			LastFailureAt:       h.LastFailureAt,
			LastFailureKind:     h.LastFailureKind,
			ConsecutiveFailures: h.ConsecutiveFailures,
		}
	}
	return SourceHealthListResponse{Success: true, Data: data}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
