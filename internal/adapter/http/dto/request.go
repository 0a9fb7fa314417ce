package dto

import (
	"net/url"

	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/usecase"
)

// StatementRequest represents a request for a party statement.
type StatementRequest struct {
	PartyID  string
	Type     string
	DateFrom string
	DateTo   string
	Order    string
}

// StatementRequestFromQuery reads the statement query parameters.
func StatementRequestFromQuery(partyID string, q url.Values) StatementRequest {
	return StatementRequest{
		PartyID:  partyID,
		Type:     q.Get("type"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
		Order:    q.Get("order"),
	}
}

// ToUseCaseInput validates and converts to use case input.
func (r StatementRequest) ToUseCaseInput() (usecase.BuildStatementInput, error) {
	partyID, err := domain.ValidatePartyID(r.PartyID)
	if err != nil {
		return usecase.BuildStatementInput{}, err
	}

	kind, err := domain.ParsePartyKind(r.Type)
	if err != nil {
		return usecase.BuildStatementInput{}, err
	}

	dateRange, err := domain.ParseDateRange(r.DateFrom, r.DateTo)
	if err != nil {
		return usecase.BuildStatementInput{}, err
	}

	return usecase.BuildStatementInput{
		PartyID: partyID,
		Kind:    kind,
		Range:   dateRange,
		Order:   domain.ParseDisplayOrder(r.Order),
	}, nil
}
