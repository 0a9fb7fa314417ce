package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/partyledger/internal/domain"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.StatementsBuilt == nil || m.SourceFailures == nil || m.RejectedRecords == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.ObserveStatement(domain.PartyCustomer, "complete", time.Millisecond, 3)

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestObserveSourceFetchCountsFailures(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSourceFetch(domain.SourcePayment, 5*time.Millisecond, nil)
	m.ObserveSourceFetch(domain.SourcePayment, 5*time.Millisecond, errors.New("down"))

	if got := testutil.ToFloat64(m.SourceFailures.WithLabelValues("payment")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
}

func TestObserveRejectedRecord(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRejectedRecord(domain.SourcePayrollRecord, domain.WarnUnknownTransactionType)
	m.ObserveRejectedRecord(domain.SourcePayrollRecord, domain.WarnUnknownTransactionType)

	got := testutil.ToFloat64(m.RejectedRecords.WithLabelValues("payroll_record", domain.WarnUnknownTransactionType))
	if got != 2 {
		t.Fatalf("expected 2 rejected records, got %v", got)
	}
}

func TestObserveStatementByOutcome(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveStatement(domain.PartySupplier, "partial", time.Millisecond, 4)
	m.ObserveStatement(domain.PartySupplier, "cancelled", time.Millisecond, 0)

	if got := testutil.ToFloat64(m.StatementsBuilt.WithLabelValues("supplier", "partial")); got != 1 {
		t.Fatalf("expected 1 partial statement, got %v", got)
	}
	if got := testutil.ToFloat64(m.StatementsBuilt.WithLabelValues("supplier", "cancelled")); got != 1 {
		t.Fatalf("expected 1 cancelled statement, got %v", got)
	}
}
