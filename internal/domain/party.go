package domain

import (
	"fmt"
	"strings"
)

// PartyKind identifies which owning domain a party belongs to.
type PartyKind string

const (
	PartyCustomer PartyKind = "customer"
	PartySupplier PartyKind = "supplier"
	PartyEmployee PartyKind = "employee"
)

// PartyKinds lists every supported party kind.
var PartyKinds = []PartyKind{PartyCustomer, PartySupplier, PartyEmployee}

// Valid reports whether k is a supported party kind.
func (k PartyKind) Valid() bool {
	switch k {
	case PartyCustomer, PartySupplier, PartyEmployee:
		return true
	}
	return false
}

// ParsePartyKind parses the ledger type query value.
func ParsePartyKind(s string) (PartyKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", ErrLedgerTypeRequired
	}

	kind := PartyKind(s)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLedgerType, s)
	}

	return kind, nil
}

// Party is the customer, supplier or employee a statement is built for.
// It is owned by its domain store and only read here.
type Party struct {
	ID   string
	Kind PartyKind
	Name string
}
