package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/infrastructure/logging"
)

// StatementConfig holds dependencies for StatementUseCase.
type StatementConfig struct {
	Parties    PartyRepository
	Adapters   *SourceAdapterSet
	Normalizer *Normalizer
	Executor   Executor             // defaults to one goroutine per adapter
	Retrier    Retrier              // defaults to a single attempt
	Health     SourceHealthRecorder // optional
	Observer   StatementObserver    // optional
	Logger     zerolog.Logger
	Timeout    time.Duration
	Now        func() time.Time
}

// StatementUseCase reconstructs party statements from the source stores.
type StatementUseCase struct {
	parties    PartyRepository
	adapters   *SourceAdapterSet
	normalizer *Normalizer
	executor   Executor
	retrier    Retrier
	health     SourceHealthRecorder
	observer   StatementObserver
	logger     zerolog.Logger
	timeout    time.Duration
	now        func() time.Time
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(cfg StatementConfig) *StatementUseCase {
	if cfg.Normalizer == nil {
		cfg.Normalizer = NewNormalizer()
	}
	if cfg.Executor == nil {
		cfg.Executor = goExecutor{}
	}
	if cfg.Retrier == nil {
		cfg.Retrier = singleAttempt{}
	}
	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultStatementTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &StatementUseCase{
		parties:    cfg.Parties,
		adapters:   cfg.Adapters,
		normalizer: cfg.Normalizer,
		executor:   cfg.Executor,
		retrier:    cfg.Retrier,
		health:     cfg.Health,
		observer:   cfg.Observer,
		logger:     cfg.Logger,
		timeout:    cfg.Timeout,
		now:        cfg.Now,
	}
}

// BuildStatementInput represents input for building a statement.
type BuildStatementInput struct {
	PartyID string
	Kind    domain.PartyKind
	Range   domain.DateRange
	Order   domain.DisplayOrder
}

type sourceResult struct {
	source  domain.SourceType
	records []domain.RawSourceRecord
	err     error
}

// BuildStatement fetches every source of the party kind concurrently,
// normalizes and balances the entries and assembles the statement.
//
// A failing source degrades the result to a partial statement with a
// warning. Cancellation or timeout of ctx yields no statement at all.
func (uc *StatementUseCase) BuildStatement(ctx context.Context, input BuildStatementInput) (*domain.Statement, error) {
	began := time.Now()

	partyID, err := domain.ValidatePartyID(input.PartyID)
	if err != nil {
		return nil, err
	}
	if !input.Kind.Valid() {
		if input.Kind == "" {
			return nil, domain.ErrLedgerTypeRequired
		}
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLedgerType, input.Kind)
	}
	if err := input.Range.Validate(); err != nil {
		return nil, err
	}
	adapters := uc.adapters.For(input.Kind)
	if len(adapters) == 0 {
		return nil, fmt.Errorf("%w: no sources registered for %q", domain.ErrUnsupportedLedgerType, input.Kind)
	}
	order := input.Order
	if order == "" {
		order = domain.NewestFirst
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	logger := logging.FromContext(ctx, uc.logger).With().
		Str("party_id", partyID).
		Str("ledger_type", string(input.Kind)).
		Logger()

	party, err := uc.parties.GetParty(ctx, input.Kind, partyID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			uc.observer.ObserveStatement(input.Kind, OutcomeCancelled, time.Since(began), 0)
			return nil, fmt.Errorf("%w: %w", domain.ErrStatementCancelled, ctxErr)
		}
		if errors.Is(err, domain.ErrPartyNotFound) {
			return nil, err
		}
		uc.observer.ObserveStatement(input.Kind, OutcomeFailed, time.Since(began), 0)
		return nil, fmt.Errorf("failed to resolve party: %w", err)
	}

	window := domain.FetchWindow{Range: input.Range, AsOf: uc.now().UTC()}
	results := uc.fanOut(ctx, adapters, party.ID, window)

	if ctxErr := ctx.Err(); ctxErr != nil {
		uc.observer.ObserveStatement(input.Kind, OutcomeCancelled, time.Since(began), 0)
		logger.Warn().Err(ctxErr).Msg("statement build cancelled")
		return nil, fmt.Errorf("%w: %w", domain.ErrStatementCancelled, ctxErr)
	}

	entries, warnings, counts := uc.collect(ctx, logger, input.Kind, input.Range, results)
	balanced := ComputeRunningBalances(entries, order)
	statement := AssembleStatement(*party, input.Range, order, window.AsOf, balanced, warnings, counts)

	if !statement.Reconciled {
		logger.Error().
			Err(ReconcileEntries(balanced, order).Err()).
			Msg("statement failed self-reconciliation")
	}

	outcome := OutcomeComplete
	if statement.Partial() {
		outcome = OutcomePartial
	}
	uc.observer.ObserveStatement(input.Kind, outcome, time.Since(began), statement.EntryCount)

	logger.Info().
		Int("entries", statement.EntryCount).
		Int("warnings", len(statement.Warnings)).
		Str("closing_balance", statement.ClosingBalance.String()).
		Dur("duration", time.Since(began)).
		Msg("statement built")

	return statement, nil
}

// fanOut runs every adapter through the executor and waits for all of them.
// Results keep adapter registration order.
func (uc *StatementUseCase) fanOut(ctx context.Context, adapters []SourceAdapter, partyID string, window domain.FetchWindow) []sourceResult {
	results := make([]sourceResult, len(adapters))

	var wg sync.WaitGroup
	for i, adapter := range adapters {
		results[i].source = adapter.Source()
		if err := ctx.Err(); err != nil {
			results[i].err = fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
			continue
		}

		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i].records, results[i].err = uc.fetch(ctx, adapter, partyID, window)
		}
		if err := uc.executor.Submit(ctx, task); err != nil {
			wg.Done()
			results[i].err = fmt.Errorf("failed to schedule fetch: %w", err)
		}
	}
	wg.Wait()

	return results
}

func (uc *StatementUseCase) fetch(ctx context.Context, adapter SourceAdapter, partyID string, window domain.FetchWindow) (records []domain.RawSourceRecord, err error) {
	began := time.Now()
	defer func() {
		if r := recover(); r != nil {
			records, err = nil, fmt.Errorf("%w: %v", domain.ErrAdapterPanicked, r)
		}
		uc.observer.ObserveSourceFetch(adapter.Source(), time.Since(began), err)
	}()

	err = uc.retrier.Retry(ctx, func() error {
		var fetchErr error
		records, fetchErr = adapter.Fetch(ctx, partyID, window)
		return fetchErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	return records, nil
}

// collect normalizes fetched records in adapter order. Failed sources and
// rejected records become warnings; nothing is given a default sign.
func (uc *StatementUseCase) collect(
	ctx context.Context,
	logger zerolog.Logger,
	kind domain.PartyKind,
	rng domain.DateRange,
	results []sourceResult,
) ([]domain.LedgerEntry, []domain.Warning, map[domain.SourceType]int) {
	var (
		entries  []domain.LedgerEntry
		warnings []domain.Warning
		counts   = make(map[domain.SourceType]int, len(results))
		seen     = make(map[string]struct{})
	)

	for _, res := range results {
		if res.err != nil {
			logger.Warn().Err(res.err).Str("source", string(res.source)).Msg("source unavailable, building partial statement")
			warnings = append(warnings, domain.Warning{
				Source:  res.source,
				Code:    domain.WarnSourceUnavailable,
				Message: "source unavailable",
			})
			uc.recordHealth(ctx, logger, res.source, res.err)
			continue
		}
		uc.recordHealth(ctx, logger, res.source, nil)
		if _, ok := counts[res.source]; !ok {
			counts[res.source] = 0
		}

		for _, record := range res.records {
			lines, err := uc.normalizer.Normalize(kind, record)
			if err != nil {
				code := warningCode(err)
				logger.Warn().Err(err).
					Str("source", string(res.source)).
					Str("record_id", record.RecordID()).
					Msg("record rejected")
				uc.observer.ObserveRejectedRecord(res.source, code)
				warnings = append(warnings, domain.Warning{
					Source:   res.source,
					Code:     code,
					RecordID: record.RecordID(),
					Message:  err.Error(),
				})
				continue
			}

			for _, entry := range lines {
				if !rng.Contains(entry.Date) {
					logger.Warn().Str("entry_id", entry.ID).Time("date", entry.Date).Msg("source returned entry outside date range")
					continue
				}
				if _, dup := seen[entry.ID]; dup {
					uc.observer.ObserveRejectedRecord(res.source, domain.WarnDuplicateEntry)
					warnings = append(warnings, domain.Warning{
						Source:   res.source,
						Code:     domain.WarnDuplicateEntry,
						RecordID: record.RecordID(),
						Message:  fmt.Sprintf("%s: %s", domain.ErrDuplicateEntry, entry.ID),
					})
					continue
				}
				seen[entry.ID] = struct{}{}
				entries = append(entries, entry)
				counts[res.source]++
			}
		}
	}

	return entries, warnings, counts
}

func (uc *StatementUseCase) recordHealth(ctx context.Context, logger zerolog.Logger, source domain.SourceType, cause error) {
	if uc.health == nil {
		return
	}

	var err error
	if cause != nil {
		err = uc.health.RecordFailure(ctx, source, cause, uc.now().UTC())
	} else {
		err = uc.health.RecordSuccess(ctx, source, uc.now().UTC())
	}
	if err != nil {
		logger.Debug().Err(err).Str("source", string(source)).Msg("failed to record source health")
	}
}

func warningCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrUndatedRecord):
		return domain.WarnUndatedRecord
	case errors.Is(err, domain.ErrNegativeAmount):
		return domain.WarnInvalidAmount
	default:
		return domain.WarnUnknownTransactionType
	}
}

// SourceHealth returns the last recorded state of every source.
func (uc *StatementUseCase) SourceHealth(ctx context.Context) ([]domain.SourceHealth, error) {
	if uc.health == nil {
		return []domain.SourceHealth{}, nil
	}
	return uc.health.List(ctx)
}

type goExecutor struct{}

func (goExecutor) Submit(_ context.Context, task func()) error {
	go task()
	return nil
}

type singleAttempt struct{}

func (singleAttempt) Retry(_ context.Context, operation func() error) error {
	return operation()
}

type nopObserver struct{}

func (nopObserver) ObserveSourceFetch(domain.SourceType, time.Duration, error) {}
func (nopObserver) ObserveRejectedRecord(domain.SourceType, string) {}
func (nopObserver) ObserveStatement(domain.PartyKind, string, time.Duration, int) {}
