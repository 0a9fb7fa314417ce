package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/partyledger/internal/adapter/http/dto"
	"github.com/iho/partyledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Success: false, Error: message})
}

// mapDomainError maps domain errors to HTTP status codes and client-safe
// messages. Anything unrecognized is a 500 with a generic message.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrLedgerTypeRequired):
		return http.StatusBadRequest, "Ledger type is required"
	case errors.Is(err, domain.ErrUnsupportedLedgerType):
		return http.StatusBadRequest, "Unsupported ledger type"
	case errors.Is(err, domain.ErrPartyIDRequired):
		return http.StatusBadRequest, "Invalid party id"
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest, "Invalid date range"
	case errors.Is(err, domain.ErrPartyNotFound):
		return http.StatusNotFound, "Party not found"
	case errors.Is(err, domain.ErrStatementCancelled):
		return http.StatusGatewayTimeout, "Statement build timed out"
	default:
		return http.StatusInternalServerError, "Failed to build ledger statement"
	}
}
