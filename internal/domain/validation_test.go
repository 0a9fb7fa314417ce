package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidatePartyID(t *testing.T) {
	t.Parallel()

	t.Run("valid id is trimmed", func(t *testing.T) {
		id, err := ValidatePartyID("  CUST-001 ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id != "CUST-001" {
			t.Fatalf("expected trimmed id, got %q", id)
		}
	})

	t.Run("empty id rejected", func(t *testing.T) {
		_, err := ValidatePartyID("   ")
		if !errors.Is(err, ErrPartyIDRequired) {
			t.Fatalf("expected ErrPartyIDRequired, got %v", err)
		}
	})

	t.Run("id too long", func(t *testing.T) {
		_, err := ValidatePartyID(strings.Repeat("a", MaxPartyIDLength+1))
		if !errors.Is(err, ErrPartyIDRequired) {
			t.Fatalf("expected ErrPartyIDRequired, got %v", err)
		}
	})

	t.Run("id with forbidden characters", func(t *testing.T) {
		_, err := ValidatePartyID("cust'; DROP TABLE customers;")
		if !errors.Is(err, ErrPartyIDRequired) {
			t.Fatalf("expected ErrPartyIDRequired, got %v", err)
		}
	})
}

func TestValidateLineAmount(t *testing.T) {
	t.Parallel()

	if err := ValidateLineAmount(decimal.Zero); err != nil {
		t.Fatalf("zero should be accepted, got %v", err)
	}
	if err := ValidateLineAmount(decimal.RequireFromString("10.50")); err != nil {
		t.Fatalf("positive should be accepted, got %v", err)
	}
	if err := ValidateLineAmount(decimal.NewFromInt(-1)); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestParsePartyKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    PartyKind
		wantErr error
	}{
		{"customer", PartyCustomer, nil},
		{" Supplier ", PartySupplier, nil},
		{"EMPLOYEE", PartyEmployee, nil},
		{"", "", ErrLedgerTypeRequired},
		{"vendor", "", ErrUnsupportedLedgerType},
	}

	for _, tt := range tests {
		got, err := ParsePartyKind(tt.input)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParsePartyKind(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParsePartyKind(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}
}
