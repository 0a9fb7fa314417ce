package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/partyledger/internal/adapter/http/dto"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// validStatement is the 5000 / 300 / 4000 customer scenario, newest first.
func validStatement() dto.StatementResponse {
	return dto.StatementResponse{
		Success: true,
		Data: []dto.LedgerEntryResponse{
			{ID: "payment:P1", Date: "2024-01-05", CreditAmount: d("4000"), Balance: d("700")},
			{ID: "sales_order:S1:discount", Date: "2024-01-01", CreditAmount: d("300"), Balance: d("4700")},
			{ID: "sales_order:S1", Date: "2024-01-01", DebitAmount: d("5000"), Balance: d("5000")},
		},
		Meta: dto.StatementMeta{
			LedgerID:         "CUST-1",
			LedgerType:       "customer",
			TransactionCount: 3,
			Order:            "desc",
			TotalDebit:       d("5000"),
			TotalCredit:      d("4300"),
			ClosingBalance:   d("700"),
		},
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}

	if got := truncate("Zahlung für Müller GmbH", 12); got != "Zahlung f..." {
		t.Fatalf("expected Zahlung f..., got %q", got)
	}

	if got := truncate("Möbelhaus", 9); got != "Möbelhaus" {
		t.Fatalf("expected nine runes unchanged, got %q", got)
	}

	if got := truncate("日本語テキスト", 5); got != "日本..." || !utf8.ValidString(got) {
		t.Fatalf("expected 日本..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestVerifyStatementValid(t *testing.T) {
	s := validStatement()
	assert.Empty(t, verifyStatement(&s))
}

func TestVerifyStatementAscending(t *testing.T) {
	s := validStatement()
	s.Meta.Order = "asc"
	s.Data = []dto.LedgerEntryResponse{s.Data[2], s.Data[1], s.Data[0]}

	assert.Empty(t, verifyStatement(&s))
}

func TestVerifyStatementDetectsProblems(t *testing.T) {
	s := validStatement()
	s.Data[1].Balance = d("4699")
	s.Meta.ClosingBalance = d("701")
	s.Meta.TransactionCount = 4

	problems := verifyStatement(&s)

	require.Len(t, problems, 3)
	assert.Contains(t, problems[0], "transaction_count")
	assert.Contains(t, problems[1], "sales_order:S1:discount")
	assert.Contains(t, problems[2], "closing_balance")
}

func TestVerifyStatementEmpty(t *testing.T) {
	s := dto.StatementResponse{Success: true, Data: []dto.LedgerEntryResponse{}}
	assert.Empty(t, verifyStatement(&s))
}

func serve(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ledgers/CUST-1", r.URL.Path)
		assert.Equal(t, "customer", r.URL.Query().Get("type"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("date_from"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatementCommand(t *testing.T) {
	srv := serve(t, http.StatusOK, validStatement())

	out, err := runCLI(t, "statement", "CUST-1", "--url", srv.URL, "--type", "customer", "--from", "2024-01-01")
	require.NoError(t, err)

	assert.Contains(t, out, "customer CUST-1")
	assert.Contains(t, out, "4700.00")
	assert.Contains(t, out, "Closing: 700.00")
}

func TestVerifyCommand(t *testing.T) {
	srv := serve(t, http.StatusOK, validStatement())

	out, err := runCLI(t, "verify", "CUST-1", "--url", srv.URL, "--type", "customer", "--from", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "PASSED")
}

func TestVerifyCommandFailure(t *testing.T) {
	bad := validStatement()
	bad.Data[0].Balance = d("0")
	srv := serve(t, http.StatusOK, bad)

	out, err := runCLI(t, "verify", "CUST-1", "--url", srv.URL, "--type", "customer", "--from", "2024-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FAILED")
	assert.True(t, strings.Contains(out, "payment:P1"))
}

func TestStatementCommandAPIError(t *testing.T) {
	srv := serve(t, http.StatusNotFound, dto.ErrorResponse{Error: "Party not found"})

	_, err := runCLI(t, "statement", "CUST-1", "--url", srv.URL, "--type", "customer", "--from", "2024-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Party not found")
}
