package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/partyledger/internal/domain"
)

const (
	fieldStatus              = "status"
	fieldLastSuccessAt       = "last_success_at"
	fieldLastFailureAt       = "last_failure_at"
	fieldLastFailureKind     = "last_failure_kind"
	fieldConsecutiveFailures = "consecutive_failures"
)

// HealthStore implements usecase.SourceHealthRecorder using one Redis hash
// per source. Records expire after ttl so a source that is no longer
// queried falls back to unknown.
type HealthStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewHealthStore creates a new HealthStore.
func NewHealthStore(client *redis.Client, ttl time.Duration) *HealthStore {
	return &HealthStore{
		client: client,
		prefix: "source_health:",
		ttl:    ttl,
	}
}

// RecordSuccess marks the source healthy and resets its failure streak.
func (s *HealthStore) RecordSuccess(ctx context.Context, source domain.SourceType, at time.Time) error {
	key := s.key(source)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldStatus, domain.SourceHealthy,
			fieldLastSuccessAt, at.UTC().Format(time.RFC3339Nano),
			fieldConsecutiveFailures, 0,
		)
		s.expire(ctx, pipe, key)
		return nil
	})
	return err
}

// RecordFailure marks the source failing and extends its failure streak.
// Only the failure kind of cause is stored; its text may name hosts or
// credentials and the health list is served to API callers.
func (s *HealthStore) RecordFailure(ctx context.Context, source domain.SourceType, cause error, at time.Time) error {
	key := s.key(source)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldStatus, domain.SourceFailing,
			fieldLastFailureAt, at.UTC().Format(time.RFC3339Nano),
			fieldLastFailureKind, domain.ClassifySourceFailure(cause),
		)
		pipe.HIncrBy(ctx, key, fieldConsecutiveFailures, 1)
		s.expire(ctx, pipe, key)
		return nil
	})
	return err
}

// List returns the state of every known source in a stable order.
func (s *HealthStore) List(ctx context.Context) ([]domain.SourceHealth, error) {
	cmds := make([]*redis.MapStringStringCmd, len(domain.SourceTypes))
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, source := range domain.SourceTypes {
			cmds[i] = pipe.HGetAll(ctx, s.key(source))
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	health := make([]domain.SourceHealth, 0, len(domain.SourceTypes))
	for i, source := range domain.SourceTypes {
		fields, err := cmds[i].Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, err
		}
		health = append(health, parseHealth(source, fields))
	}

	return health, nil
}

func (s *HealthStore) key(source domain.SourceType) string {
	return s.prefix + string(source)
}

func (s *HealthStore) expire(ctx context.Context, pipe redis.Pipeliner, key string) {
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
}

func parseHealth(source domain.SourceType, fields map[string]string) domain.SourceHealth {
	h := domain.SourceHealth{Source: source, Status: domain.SourceUnknown}
	if len(fields) == 0 {
		return h
	}

	if status := fields[fieldStatus]; status != "" {
		h.Status = status
	}
	h.LastSuccessAt = parseTime(fields[fieldLastSuccessAt])
	h.LastFailureAt = parseTime(fields[fieldLastFailureAt])
	h.LastFailureKind = fields[fieldLastFailureKind]
	h.ConsecutiveFailures, _ = strconv.ParseInt(fields[fieldConsecutiveFailures], 10, 64)

	return h
}

func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil
	}
	return &t
}
