package workerpool

import (
	"context"
	"fmt"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
)

// Config sizes the pool that runs source adapter fetches.
type Config struct {
	Size int
}

// Pool is a bounded goroutine pool shared by all statement builds.
// Submit waits for a free worker until its context is done.
type Pool struct {
	pool  *ants.Pool
	slots chan struct{}
	log   zerolog.Logger
}

// New creates a pool with cfg.Size workers. Panics in tasks are logged
// and swallowed so that one bad fetch cannot take a worker down.
func New(cfg Config, log zerolog.Logger) (*Pool, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("worker pool size must be positive, got %d", cfg.Size)
	}

	pool, err := ants.NewPool(cfg.Size, ants.WithPanicHandler(func(r any) {
		log.Error().Interface("panic", r).Msg("worker pool task panicked")
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	return &Pool{pool: pool, slots: make(chan struct{}, cfg.Size), log: log}, nil
}

// Submit implements usecase.Executor. A slot is held for the task's
// lifetime, so ants only waits for a finishing worker to return.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("worker pool submit: %w", err)
	}

	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("waiting for a free worker: %w", ctx.Err())
	}

	err := p.pool.Submit(func() {
		defer func() { <-p.slots }()
		task()
	})
	if err != nil {
		<-p.slots
		return err
	}
	return nil
}

// Running returns the number of busy workers.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Capacity returns the configured pool size.
func (p *Pool) Capacity() int {
	return p.pool.Cap()
}

// Shutdown releases the workers. Tasks submitted afterwards fail.
func (p *Pool) Shutdown() {
	p.log.Info().Int("running_workers", p.pool.Running()).Msg("shutting down worker pool")
	p.pool.Release()
}
