package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/iho/partyledger/internal/domain"
)

func TestPartyRepositoryGetParty(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(`SELECT id, name FROM suppliers WHERE id = \$1`).
		WithArgs("SUP-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow("SUP-1", "Acme Supplies"))

	repo := NewPartyRepository(pool)
	party, err := repo.GetParty(context.Background(), domain.PartySupplier, "SUP-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if party.ID != "SUP-1" || party.Name != "Acme Supplies" || party.Kind != domain.PartySupplier {
		t.Fatalf("unexpected party: %+v", party)
	}
	assertExpectations(t, pool)
}

func TestPartyRepositoryNotFound(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(`SELECT id, name FROM customers`).
		WithArgs("CUST-404").
		WillReturnError(pgx.ErrNoRows)

	repo := NewPartyRepository(pool)
	_, err := repo.GetParty(context.Background(), domain.PartyCustomer, "CUST-404")
	if !errors.Is(err, domain.ErrPartyNotFound) {
		t.Fatalf("expected ErrPartyNotFound, got %v", err)
	}
	assertExpectations(t, pool)
}

func TestPartyRepositoryUnknownKind(t *testing.T) {
	repo := NewPartyRepository(newMockPool(t))

	_, err := repo.GetParty(context.Background(), domain.PartyKind("vendor"), "X")
	if !errors.Is(err, domain.ErrUnsupportedLedgerType) {
		t.Fatalf("expected ErrUnsupportedLedgerType, got %v", err)
	}
}
