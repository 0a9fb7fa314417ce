package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iho/partyledger/internal/domain"
)

var partyTables = map[domain.PartyKind]string{
	domain.PartyCustomer: "customers",
	domain.PartySupplier: "suppliers",
	domain.PartyEmployee: "employees",
}

// PartyRepository implements usecase.PartyRepository over the customer,
// supplier and employee master tables.
type PartyRepository struct {
	db Querier
}

// NewPartyRepository creates a new PartyRepository.
func NewPartyRepository(db Querier) *PartyRepository {
	return &PartyRepository{db: db}
}

// GetParty looks the party up in the table owned by its kind.
func (r *PartyRepository) GetParty(ctx context.Context, kind domain.PartyKind, id string) (*domain.Party, error) {
	table, ok := partyTables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLedgerType, kind)
	}

	party := &domain.Party{Kind: kind}
	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM `+table+` WHERE id = $1`, id,
	).Scan(&party.ID, &party.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, err
	}

	return party, nil
}
