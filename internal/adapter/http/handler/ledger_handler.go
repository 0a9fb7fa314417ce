package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/partyledger/internal/adapter/http/dto"
	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/infrastructure/logging"
	"github.com/iho/partyledger/internal/usecase"
)

// StatementService builds party statements.
type StatementService interface {
	BuildStatement(ctx context.Context, input usecase.BuildStatementInput) (*domain.Statement, error)
	SourceHealth(ctx context.Context) ([]domain.SourceHealth, error)
}

// LedgerHandler handles party ledger HTTP requests.
type LedgerHandler struct {
	statements StatementService
	logger     zerolog.Logger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(statements StatementService, logger zerolog.Logger) *LedgerHandler {
	return &LedgerHandler{statements: statements, logger: logger}
}

// GetStatement handles GET /ledgers/{partyId}.
func (h *LedgerHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	req := dto.StatementRequestFromQuery(chi.URLParam(r, "partyId"), r.URL.Query())

	input, err := req.ToUseCaseInput()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	statement, err := h.statements.BuildStatement(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}

// SourceHealth handles GET /sources/health.
func (h *LedgerHandler) SourceHealth(w http.ResponseWriter, r *http.Request) {
	items, err := h.statements.SourceHealth(r.Context())
	if err != nil {
		log := logging.FromContext(r.Context(), h.logger)
		log.Error().Err(err).Msg("failed to read source health")
		writeError(w, http.StatusInternalServerError, "Failed to read source health")
		return
	}

	writeJSON(w, http.StatusOK, dto.SourceHealthFromDomain(items))
}

func (h *LedgerHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapDomainError(err)
	if status >= http.StatusInternalServerError {
		log := logging.FromContext(r.Context(), h.logger)
		log.Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("ledger statement request failed")
	}
	writeError(w, status, message)
}
