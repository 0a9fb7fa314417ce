package usecase

import (
	"context"
	"time"

	"github.com/iho/partyledger/internal/domain"
)

// PartyRepository resolves parties in their owning domain stores.
type PartyRepository interface {
	GetParty(ctx context.Context, kind domain.PartyKind, id string) (*domain.Party, error)
}

// SalesOrderRepository reads sales orders.
type SalesOrderRepository interface {
	ListByCustomer(ctx context.Context, customerID string, window domain.FetchWindow) ([]*domain.SalesOrder, error)
}

// InvoiceRepository reads customer invoices.
type InvoiceRepository interface {
	// ListStandaloneByCustomer returns invoices not raised from a sales order.
	ListStandaloneByCustomer(ctx context.Context, customerID string, window domain.FetchWindow) ([]*domain.Invoice, error)
	// ListIDsByCustomer returns every invoice of the customer, linked through
	// sales orders or standalone, regardless of date.
	ListIDsByCustomer(ctx context.Context, customerID string) ([]string, error)
}

// PaymentRepository reads customer payments, which are keyed by invoice.
type PaymentRepository interface {
	ListByInvoiceIDs(ctx context.Context, invoiceIDs []string, window domain.FetchWindow) ([]*domain.Payment, error)
}

// PurchaseOrderRepository reads purchase orders.
type PurchaseOrderRepository interface {
	ListBySupplier(ctx context.Context, supplierID string, window domain.FetchWindow) ([]*domain.PurchaseOrder, error)
}

// VendorPaymentRepository reads payments made to suppliers.
type VendorPaymentRepository interface {
	ListBySupplier(ctx context.Context, supplierID string, window domain.FetchWindow) ([]*domain.VendorPayment, error)
}

// VendorBillRepository reads supplier bills.
type VendorBillRepository interface {
	ListBySupplier(ctx context.Context, supplierID string, window domain.FetchWindow) ([]*domain.VendorBill, error)
}

// ExpenseRepository reads expenses tagged to a supplier or an employee.
type ExpenseRepository interface {
	ListByParty(ctx context.Context, kind domain.PartyKind, partyID string, window domain.FetchWindow) ([]*domain.Expense, error)
}

// PayrollEntryRepository reads salary accruals.
type PayrollEntryRepository interface {
	ListByEmployee(ctx context.Context, employeeID string, window domain.FetchWindow) ([]*domain.PayrollEntry, error)
}

// PayrollRecordRepository reads payroll ledger rows.
type PayrollRecordRepository interface {
	ListByEmployee(ctx context.Context, employeeID string, window domain.FetchWindow) ([]*domain.PayrollRecord, error)
}

// SourceAdapter fetches raw records for one party from one origin store.
// Implementations bound the query by the window at the store.
type SourceAdapter interface {
	Source() domain.SourceType
	Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error)
}

// SourceHealthRecorder keeps the last observed outcome per source.
type SourceHealthRecorder interface {
	RecordSuccess(ctx context.Context, source domain.SourceType, at time.Time) error
	RecordFailure(ctx context.Context, source domain.SourceType, cause error, at time.Time) error
	List(ctx context.Context) ([]domain.SourceHealth, error)
}

// Retrier retries an operation on transient errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Executor runs tasks concurrently. Submit gives up once ctx is done.
type Executor interface {
	Submit(ctx context.Context, task func()) error
}

// StatementObserver receives statement pipeline measurements.
type StatementObserver interface {
	ObserveSourceFetch(source domain.SourceType, duration time.Duration, err error)
	ObserveRejectedRecord(source domain.SourceType, code string)
	ObserveStatement(kind domain.PartyKind, outcome string, duration time.Duration, entries int)
}
