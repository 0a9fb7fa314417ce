package usecase

import "github.com/iho/partyledger/internal/domain"

// SourceAdapterSet selects the adapters to query for a party kind.
type SourceAdapterSet struct {
	adapters map[domain.PartyKind][]SourceAdapter
}

// NewSourceAdapterSet creates an empty set.
func NewSourceAdapterSet() *SourceAdapterSet {
	return &SourceAdapterSet{adapters: make(map[domain.PartyKind][]SourceAdapter)}
}

// Register appends adapters for kind. Registration order is the order
// warnings and per-source results are reported in.
func (s *SourceAdapterSet) Register(kind domain.PartyKind, adapters ...SourceAdapter) *SourceAdapterSet {
	s.adapters[kind] = append(s.adapters[kind], adapters...)
	return s
}

// For returns the adapters registered for kind.
func (s *SourceAdapterSet) For(kind domain.PartyKind) []SourceAdapter {
	return s.adapters[kind]
}

// Stores groups the read-only repositories the default adapters use.
type Stores struct {
	SalesOrders    SalesOrderRepository
	Invoices       InvoiceRepository
	Payments       PaymentRepository
	PurchaseOrders PurchaseOrderRepository
	VendorPayments VendorPaymentRepository
	VendorBills    VendorBillRepository
	Expenses       ExpenseRepository
	PayrollEntries PayrollEntryRepository
	PayrollRecords PayrollRecordRepository
}

// NewDefaultSourceAdapterSet wires the fixed adapter set of every party kind.
func NewDefaultSourceAdapterSet(stores Stores) *SourceAdapterSet {
	return NewSourceAdapterSet().
		Register(domain.PartyCustomer,
			NewSalesOrderAdapter(stores.SalesOrders),
			NewPaymentAdapter(stores.Invoices, stores.Payments),
			NewInvoiceAdapter(stores.Invoices),
		).
		Register(domain.PartySupplier,
			NewPurchaseOrderAdapter(stores.PurchaseOrders),
			NewVendorPaymentAdapter(stores.VendorPayments),
			NewExpenseAdapter(stores.Expenses, domain.PartySupplier),
			NewVendorBillAdapter(stores.VendorBills),
		).
		Register(domain.PartyEmployee,
			NewPayrollAdapter(stores.PayrollEntries),
			NewExpenseAdapter(stores.Expenses, domain.PartyEmployee),
			NewPayrollRecordAdapter(stores.PayrollRecords),
		)
}
