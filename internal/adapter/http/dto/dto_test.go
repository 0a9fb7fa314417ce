package dto

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/partyledger/internal/domain"
)

func TestStatementRequestToUseCaseInput(t *testing.T) {
	q := url.Values{}
	q.Set("type", "Customer")
	q.Set("date_from", "2024-01-01")
	q.Set("date_to", "2024-01-31")
	q.Set("order", "asc")

	input, err := StatementRequestFromQuery(" CUST-1 ", q).ToUseCaseInput()
	require.NoError(t, err)

	assert.Equal(t, "CUST-1", input.PartyID)
	assert.Equal(t, domain.PartyCustomer, input.Kind)
	assert.Equal(t, domain.OldestFirst, input.Order)
	require.NotNil(t, input.Range.From)
	require.NotNil(t, input.Range.To)
	assert.Equal(t, "2024-01-31", input.Range.To.Format(domain.DateLayout))
}

func TestStatementRequestDefaults(t *testing.T) {
	input, err := StatementRequest{PartyID: "SUP-1", Type: "supplier"}.ToUseCaseInput()
	require.NoError(t, err)

	assert.Equal(t, domain.NewestFirst, input.Order)
	assert.Nil(t, input.Range.From)
	assert.Nil(t, input.Range.To)
}

func TestStatementRequestErrors(t *testing.T) {
	tests := []struct {
		name string
		req  StatementRequest
		want error
	}{
		{"missing type", StatementRequest{PartyID: "C1"}, domain.ErrLedgerTypeRequired},
		{"unsupported type", StatementRequest{PartyID: "C1", Type: "vendor"}, domain.ErrUnsupportedLedgerType},
		{"missing party", StatementRequest{Type: "customer"}, domain.ErrPartyIDRequired},
		{"bad date", StatementRequest{PartyID: "C1", Type: "customer", DateFrom: "01/02/2024"}, domain.ErrInvalidDateRange},
		{"inverted range", StatementRequest{PartyID: "C1", Type: "customer", DateFrom: "2024-02-01", DateTo: "2024-01-01"}, domain.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToUseCaseInput()
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestStatementFromDomain(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	statement := &domain.Statement{
		Party:     domain.Party{ID: "CUST-1", Kind: domain.PartyCustomer, Name: "Acme"},
		DateRange: domain.DateRange{From: &from},
		Order:     domain.NewestFirst,
		Entries: []domain.LedgerEntry{
			{
				ID:              "payment:P1",
				Date:            time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				TransactionType: domain.TxPayment,
				CreditAmount:    decimal.RequireFromString("4000"),
				Balance:         decimal.RequireFromString("700"),
				Source:          domain.SourcePayment,
			},
		},
		EntryCount:     1,
		SourceCounts:   map[domain.SourceType]int{domain.SourcePayment: 1},
		AsOf:           time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		TotalCredit:    decimal.RequireFromString("4000"),
		ClosingBalance: decimal.RequireFromString("700"),
		Reconciled:     true,
	}

	raw, err := json.Marshal(StatementFromDomain(statement))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, true, decoded["success"])
	data := decoded["data"].([]any)
	require.Len(t, data, 1)
	entry := data[0].(map[string]any)
	assert.Equal(t, "2024-01-05", entry["date"])
	assert.Equal(t, "700", entry["balance"])
	assert.Equal(t, "0", entry["debit_amount"])

	meta := decoded["meta"].(map[string]any)
	assert.Equal(t, "CUST-1", meta["ledger_id"])
	assert.Equal(t, "Acme", meta["party_name"])
	assert.Equal(t, float64(1), meta["transaction_count"])
	assert.Equal(t, map[string]any{"from": "2024-01-01", "to": nil}, meta["date_range"])
	_, hasWarnings := meta["warnings"]
	assert.False(t, hasWarnings, "warnings must be omitted on complete statements")
}

func TestStatementFromDomainEmpty(t *testing.T) {
	raw, err := json.Marshal(StatementFromDomain(&domain.Statement{
		Party: domain.Party{ID: "EMP-1", Kind: domain.PartyEmployee},
		Warnings: []domain.Warning{
			{Source: domain.SourcePayrollEntry, Code: domain.WarnSourceUnavailable, Message: "source unavailable"},
		},
	}))
	require.NoError(t, err)

	var decoded struct {
		Data []LedgerEntryResponse `json:"data"`
		Meta StatementMeta         `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.NotNil(t, decoded.Data)
	assert.Empty(t, decoded.Data)
	require.Len(t, decoded.Meta.Warnings, 1)
	assert.Equal(t, "payroll_entry", decoded.Meta.Warnings[0].Source)
}
