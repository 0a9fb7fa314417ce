package usecase

import (
	"context"
	"fmt"

	"github.com/iho/partyledger/internal/domain"
)

func toRecords[T domain.RawSourceRecord](rows []T) []domain.RawSourceRecord {
	records := make([]domain.RawSourceRecord, len(rows))
	for i, row := range rows {
		records[i] = row
	}
	return records
}

// SalesOrderAdapter reads a customer's sales orders.
type SalesOrderAdapter struct {
	repo SalesOrderRepository
}

// NewSalesOrderAdapter creates a new SalesOrderAdapter.
func NewSalesOrderAdapter(repo SalesOrderRepository) *SalesOrderAdapter {
	return &SalesOrderAdapter{repo: repo}
}

func (a *SalesOrderAdapter) Source() domain.SourceType { return domain.SourceSalesOrder }

// Fetch implements SourceAdapter.
func (a *SalesOrderAdapter) Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error) {
	rows, err := a.repo.ListByCustomer(ctx, partyID, window)
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

// InvoiceAdapter reads a customer's standalone invoices.
type InvoiceAdapter struct {
	repo InvoiceRepository
}

// NewInvoiceAdapter creates a new InvoiceAdapter.
func NewInvoiceAdapter(repo InvoiceRepository) *InvoiceAdapter {
	return &InvoiceAdapter{repo: repo}
}

func (a *InvoiceAdapter) Source() domain.SourceType { return domain.SourceInvoice }

// Fetch implements SourceAdapter.
func (a *InvoiceAdapter) Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error) {
	rows, err := a.repo.ListStandaloneByCustomer(ctx, partyID, window)
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

// PaymentAdapter reads payments received from a customer. Payments are
// keyed by invoice, so the customer's invoices are resolved first.
type PaymentAdapter struct {
	invoices InvoiceRepository
	payments PaymentRepository
}

// NewPaymentAdapter creates a new PaymentAdapter.
func NewPaymentAdapter(invoices InvoiceRepository, payments PaymentRepository) *PaymentAdapter {
	return &PaymentAdapter{invoices: invoices, payments: payments}
}

func (a *PaymentAdapter) Source() domain.SourceType { return domain.SourcePayment }

// Fetch implements SourceAdapter.
func (a *PaymentAdapter) Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error) {
	// Invoice ids are not date bounded: a payment inside the window may
	// settle an invoice from before it.
	invoiceIDs, err := a.invoices.ListIDsByCustomer(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invoices: %w", err)
	}
	if len(invoiceIDs) == 0 {
		return nil, nil
	}

	rows, err := a.payments.ListByInvoiceIDs(ctx, invoiceIDs, window)
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

// PurchaseOrderAdapter reads a supplier's purchase orders.
type PurchaseOrderAdapter struct {
	repo PurchaseOrderRepository
}

// NewPurchaseOrderAdapter creates a new PurchaseOrderAdapter.
func NewPurchaseOrderAdapter(repo PurchaseOrderRepository) *PurchaseOrderAdapter {
	return &PurchaseOrderAdapter{repo: repo}
}

func (a *PurchaseOrderAdapter) Source() domain.SourceType { return domain.SourcePurchaseOrder }

// Fetch implements SourceAdapter.
func (a *PurchaseOrderAdapter) Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error) {
	rows, err := a.repo.ListBySupplier(ctx, partyID, window)
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

// VendorPaymentAdapter reads payments made to a supplier.
type VendorPaymentAdapter struct {
	repo VendorPaymentRepository
}

// NewVendorPaymentAdapter creates a new VendorPaymentAdapter.
func NewVendorPaymentAdapter(repo VendorPaymentRepository) *VendorPaymentAdapter {
	return &VendorPaymentAdapter{repo: repo}
}

func (a *VendorPaymentAdapter) Source() domain.SourceType { return domain.SourceVendorPayment }

// Fetch implements SourceAdapter.
func (a *VendorPaymentAdapter) Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error) {
	rows, err := a.repo.ListBySupplier(ctx, partyID, window)
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

// ExpenseAdapter reads expenses tagged to one party kind.
type ExpenseAdapter struct {
	repo ExpenseRepository
	kind domain.PartyKind
}

// NewExpenseAdapter creates an ExpenseAdapter for supplier- or employee-tagged expenses.
func NewExpenseAdapter(repo ExpenseRepository, kind domain.PartyKind) *ExpenseAdapter {
	return &ExpenseAdapter{repo: repo, kind: kind}
}

func (a *ExpenseAdapter) Source() domain.SourceType { return domain.SourceExpense }

// Fetch implements SourceAdapter.
func (a *ExpenseAdapter) Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error) {
	rows, err := a.repo.ListByParty(ctx, a.kind, partyID, window)
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

// VendorBillAdapter reads a supplier's bills.
type VendorBillAdapter struct {
	repo VendorBillRepository
}

// NewVendorBillAdapter creates a new VendorBillAdapter.
func NewVendorBillAdapter(repo VendorBillRepository) *VendorBillAdapter {
	return &VendorBillAdapter{repo: repo}
}

func (a *VendorBillAdapter) Source() domain.SourceType { return domain.SourceVendorBill }

// Fetch implements SourceAdapter.
func (a *VendorBillAdapter) Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error) {
	rows, err := a.repo.ListBySupplier(ctx, partyID, window)
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

// PayrollAdapter reads an employee's salary accruals.
type PayrollAdapter struct {
	repo PayrollEntryRepository
}

// NewPayrollAdapter creates a new PayrollAdapter.
func NewPayrollAdapter(repo PayrollEntryRepository) *PayrollAdapter {
	return &PayrollAdapter{repo: repo}
}

func (a *PayrollAdapter) Source() domain.SourceType { return domain.SourcePayrollEntry }

// Fetch implements SourceAdapter.
func (a *PayrollAdapter) Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error) {
	rows, err := a.repo.ListByEmployee(ctx, partyID, window)
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

// PayrollRecordAdapter reads an employee's payroll ledger rows.
type PayrollRecordAdapter struct {
	repo PayrollRecordRepository
}

// NewPayrollRecordAdapter creates a new PayrollRecordAdapter.
func NewPayrollRecordAdapter(repo PayrollRecordRepository) *PayrollRecordAdapter {
	return &PayrollRecordAdapter{repo: repo}
}

func (a *PayrollRecordAdapter) Source() domain.SourceType { return domain.SourcePayrollRecord }

// Fetch implements SourceAdapter.
func (a *PayrollRecordAdapter) Fetch(ctx context.Context, partyID string, window domain.FetchWindow) ([]domain.RawSourceRecord, error) {
	rows, err := a.repo.ListByEmployee(ctx, partyID, window)
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}
