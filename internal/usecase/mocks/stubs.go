package mocks

import (
	"context"
	"sync"

	"github.com/iho/partyledger/internal/domain"
)

// StubPartyRepository resolves parties from an in-memory map.
type StubPartyRepository struct {
	mu      sync.RWMutex
	parties map[string]*domain.Party

	GetPartyFunc func(ctx context.Context, kind domain.PartyKind, id string) (*domain.Party, error)
}

// NewStubPartyRepository creates a repository holding parties.
func NewStubPartyRepository(parties ...domain.Party) *StubPartyRepository {
	r := &StubPartyRepository{parties: make(map[string]*domain.Party)}
	for _, p := range parties {
		r.Add(p)
	}
	return r
}

// Add stores p.
func (r *StubPartyRepository) Add(p domain.Party) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parties[string(p.Kind)+"/"+p.ID] = &p
}

func (r *StubPartyRepository) GetParty(ctx context.Context, kind domain.PartyKind, id string) (*domain.Party, error) {
	if r.GetPartyFunc != nil {
		return r.GetPartyFunc(ctx, kind, id)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parties[string(kind)+"/"+id]
	if !ok {
		return nil, domain.ErrPartyNotFound
	}
	cp := *p
	return &cp, nil
}

// StubSourceAdapter returns fixed records, or delegates to FetchFunc.
type StubSourceAdapter struct {
	SourceType domain.SourceType
	Records    []domain.RawSourceRecord
	Err        error

	FetchFunc func(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error)

	mu      sync.Mutex
	calls   int
	windows []domain.FetchWindow
}

func (a *StubSourceAdapter) Source() domain.SourceType {
	return a.SourceType
}

func (a *StubSourceAdapter) Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error) {
	a.mu.Lock()
	a.calls++
	a.windows = append(a.windows, window)
	a.mu.Unlock()

	if a.FetchFunc != nil {
		return a.FetchFunc(ctx, partyID, window)
	}
	return a.Records, a.Err
}

// Calls returns how many times Fetch ran.
func (a *StubSourceAdapter) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// LastWindow returns the window of the latest Fetch.
func (a *StubSourceAdapter) LastWindow() domain.FetchWindow {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.windows) == 0 {
		return domain.FetchWindow{}
	}
	return a.windows[len(a.windows)-1]
}
