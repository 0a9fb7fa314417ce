package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SourceType names the origin store a raw record came from.
type SourceType string

const (
	SourceSalesOrder    SourceType = "sales_order"
	SourceInvoice       SourceType = "invoice"
	SourcePayment       SourceType = "payment"
	SourcePurchaseOrder SourceType = "purchase_order"
	SourceVendorPayment SourceType = "vendor_payment"
	SourceExpense       SourceType = "expense"
	SourceVendorBill    SourceType = "vendor_bill"
	SourcePayrollEntry  SourceType = "payroll_entry"
	SourcePayrollRecord SourceType = "payroll_record"
)

// SourceTypes lists every origin store in a stable order.
var SourceTypes = []SourceType{
	SourceSalesOrder,
	SourceInvoice,
	SourcePayment,
	SourcePurchaseOrder,
	SourceVendorPayment,
	SourceExpense,
	SourceVendorBill,
	SourcePayrollEntry,
	SourcePayrollRecord,
}

// RecordLine is one monetary component of a raw record. Compound records
// (an order with a discount, a payroll entry with deductions) return
// several lines that share the record's document id.
type RecordLine struct {
	// Suffix distinguishes sub-lines; empty for the primary line.
	Suffix      string
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Reference   string
}

// RawSourceRecord is a row read from one origin store. Each store has its
// own concrete type; the normalizer only sees this interface.
type RawSourceRecord interface {
	Source() SourceType
	RecordID() string
	// DocumentDate is the economically meaningful date, nil if the store has none.
	DocumentDate() *time.Time
	DocumentLabel() string
	RecordStatus() string
	Lines() []RecordLine
}

// SalesOrder is a customer order; its final price is invoiced to the customer.
type SalesOrder struct {
	ID             string
	OrderNumber    string
	CustomerID     string
	OrderDate      *time.Time
	FinalPrice     decimal.Decimal
	DiscountAmount decimal.Decimal
	FreightCharges decimal.Decimal
	Status         string
}

func (o *SalesOrder) Source() SourceType { return SourceSalesOrder }
func (o *SalesOrder) RecordID() string { return o.ID }
func (o *SalesOrder) DocumentDate() *time.Time { return o.OrderDate }
func (o *SalesOrder) DocumentLabel() string { return "Sales Order" }
func (o *SalesOrder) RecordStatus() string { return o.Status }

func (o *SalesOrder) Lines() []RecordLine {
	lines := []RecordLine{{
		Type:        TxInvoice,
		Amount:      o.FinalPrice,
		Description: fmt.Sprintf("Sales order %s", o.OrderNumber),
		Reference:   o.OrderNumber,
	}}
	if o.DiscountAmount.IsPositive() {
		lines = append(lines, RecordLine{
			Suffix:      "discount",
			Type:        TxDiscount,
			Amount:      o.DiscountAmount,
			Description: fmt.Sprintf("Discount on sales order %s", o.OrderNumber),
			Reference:   o.OrderNumber,
		})
	}
	if o.FreightCharges.IsPositive() {
		lines = append(lines, RecordLine{
			Suffix:      "freight",
			Type:        TxFreight,
			Amount:      o.FreightCharges,
			Description: fmt.Sprintf("Freight on sales order %s", o.OrderNumber),
			Reference:   o.OrderNumber,
		})
	}
	return lines
}

// Invoice is a customer invoice not raised from a sales order.
type Invoice struct {
	ID            string
	InvoiceNumber string
	CustomerID    string
	InvoiceDate   *time.Time
	TotalAmount   decimal.Decimal
	Status        string
}

func (i *Invoice) Source() SourceType { return SourceInvoice }
func (i *Invoice) RecordID() string { return i.ID }
func (i *Invoice) DocumentDate() *time.Time { return i.InvoiceDate }
func (i *Invoice) DocumentLabel() string { return "Invoice" }
func (i *Invoice) RecordStatus() string { return i.Status }

func (i *Invoice) Lines() []RecordLine {
	return []RecordLine{{
		Type:        TxInvoice,
		Amount:      i.TotalAmount,
		Description: fmt.Sprintf("Invoice %s", i.InvoiceNumber),
		Reference:   i.InvoiceNumber,
	}}
}

// Payment is money received against a customer invoice.
type Payment struct {
	ID              string
	PaymentNumber   string
	InvoiceID       string
	InvoiceNumber   string
	PaymentDate     *time.Time
	Amount          decimal.Decimal
	PaymentMethod   string
	ReferenceNumber string
	Status          string
}

func (p *Payment) Source() SourceType { return SourcePayment }
func (p *Payment) RecordID() string { return p.ID }
func (p *Payment) DocumentDate() *time.Time { return p.PaymentDate }
func (p *Payment) DocumentLabel() string { return "Payment" }
func (p *Payment) RecordStatus() string { return p.Status }

func (p *Payment) Lines() []RecordLine {
	desc := fmt.Sprintf("Payment received for invoice %s", p.InvoiceNumber)
	if p.PaymentMethod != "" {
		desc += " (" + p.PaymentMethod + ")"
	}
	return []RecordLine{{
		Type:        TxPayment,
		Amount:      p.Amount,
		Description: desc,
		Reference:   firstNonEmpty(p.ReferenceNumber, p.PaymentNumber),
	}}
}

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	ID          string
	PONumber    string
	SupplierID  string
	OrderDate   *time.Time
	TotalAmount decimal.Decimal
	TaxAmount   decimal.Decimal
	Status      string
}

func (o *PurchaseOrder) Source() SourceType { return SourcePurchaseOrder }
func (o *PurchaseOrder) RecordID() string { return o.ID }
func (o *PurchaseOrder) DocumentDate() *time.Time { return o.OrderDate }
func (o *PurchaseOrder) DocumentLabel() string { return "Purchase Order" }
func (o *PurchaseOrder) RecordStatus() string { return o.Status }

func (o *PurchaseOrder) Lines() []RecordLine {
	lines := []RecordLine{{
		Type:        TxBill,
		Amount:      o.TotalAmount,
		Description: fmt.Sprintf("Purchase order %s", o.PONumber),
		Reference:   o.PONumber,
	}}
	if o.TaxAmount.IsPositive() {
		lines = append(lines, RecordLine{
			Suffix:      "tax",
			Type:        TxTax,
			Amount:      o.TaxAmount,
			Description: fmt.Sprintf("Tax on purchase order %s", o.PONumber),
			Reference:   o.PONumber,
		})
	}
	return lines
}

// VendorPayment is money paid to a supplier.
type VendorPayment struct {
	ID              string
	PaymentNumber   string
	SupplierID      string
	PaymentDate     *time.Time
	Amount          decimal.Decimal
	PaymentMethod   string
	ReferenceNumber string
	Status          string
}

func (p *VendorPayment) Source() SourceType { return SourceVendorPayment }
func (p *VendorPayment) RecordID() string { return p.ID }
func (p *VendorPayment) DocumentDate() *time.Time { return p.PaymentDate }
func (p *VendorPayment) DocumentLabel() string { return "Vendor Payment" }
func (p *VendorPayment) RecordStatus() string { return p.Status }

func (p *VendorPayment) Lines() []RecordLine {
	desc := fmt.Sprintf("Payment %s to supplier", p.PaymentNumber)
	if p.PaymentMethod != "" {
		desc += " (" + p.PaymentMethod + ")"
	}
	return []RecordLine{{
		Type:        TxPayment,
		Amount:      p.Amount,
		Description: desc,
		Reference:   firstNonEmpty(p.ReferenceNumber, p.PaymentNumber),
	}}
}

// Expense is a company expense tagged to a supplier or an employee.
type Expense struct {
	ID            string
	ExpenseNumber string
	Category      string
	Description   string
	PartyKind     PartyKind
	PartyID       string
	ExpenseDate   *time.Time
	Amount        decimal.Decimal
	Status        string
}

func (e *Expense) Source() SourceType { return SourceExpense }
func (e *Expense) RecordID() string { return e.ID }
func (e *Expense) DocumentDate() *time.Time { return e.ExpenseDate }
func (e *Expense) DocumentLabel() string { return "Expense" }
func (e *Expense) RecordStatus() string { return e.Status }

func (e *Expense) Lines() []RecordLine {
	desc := e.Description
	if desc == "" {
		desc = fmt.Sprintf("Expense %s", e.ExpenseNumber)
	}
	if e.Category != "" {
		desc += " [" + e.Category + "]"
	}
	return []RecordLine{{
		Type:        TxExpense,
		Amount:      e.Amount,
		Description: desc,
		Reference:   e.ExpenseNumber,
	}}
}

// VendorBill is a bill received from a supplier.
type VendorBill struct {
	ID          string
	BillNumber  string
	SupplierID  string
	BillDate    *time.Time
	TotalAmount decimal.Decimal
	Status      string
}

func (b *VendorBill) Source() SourceType { return SourceVendorBill }
func (b *VendorBill) RecordID() string { return b.ID }
func (b *VendorBill) DocumentDate() *time.Time { return b.BillDate }
func (b *VendorBill) DocumentLabel() string { return "Vendor Bill" }
func (b *VendorBill) RecordStatus() string { return b.Status }

func (b *VendorBill) Lines() []RecordLine {
	return []RecordLine{{
		Type:        TxBill,
		Amount:      b.TotalAmount,
		Description: fmt.Sprintf("Vendor bill %s", b.BillNumber),
		Reference:   b.BillNumber,
	}}
}

// PayrollEntry is a salary accrual for one pay period.
type PayrollEntry struct {
	ID              string
	EmployeeID      string
	Period          string
	PayDate         *time.Time
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	Status          string
}

func (p *PayrollEntry) Source() SourceType { return SourcePayrollEntry }
func (p *PayrollEntry) RecordID() string { return p.ID }
func (p *PayrollEntry) DocumentDate() *time.Time { return p.PayDate }
func (p *PayrollEntry) DocumentLabel() string { return "Payroll" }
func (p *PayrollEntry) RecordStatus() string { return p.Status }

func (p *PayrollEntry) Lines() []RecordLine {
	lines := []RecordLine{{
		Type:        TxSalary,
		Amount:      p.GrossSalary,
		Description: fmt.Sprintf("Salary for %s", p.Period),
		Reference:   p.Period,
	}}
	if p.TotalDeductions.IsPositive() {
		lines = append(lines, RecordLine{
			Suffix:      "deduction",
			Type:        TxDeduction,
			Amount:      p.TotalDeductions,
			Description: fmt.Sprintf("Deductions for %s", p.Period),
			Reference:   p.Period,
		})
	}
	return lines
}

// PayrollRecord is a payroll ledger row. RecordType is stored as free
// text by the payroll system and is taken as the transaction type.
type PayrollRecord struct {
	ID         string
	EmployeeID string
	RecordType string
	RecordDate *time.Time
	Amount     decimal.Decimal
	Reference  string
	Status     string
}

func (r *PayrollRecord) Source() SourceType { return SourcePayrollRecord }
func (r *PayrollRecord) RecordID() string { return r.ID }
func (r *PayrollRecord) DocumentDate() *time.Time { return r.RecordDate }
func (r *PayrollRecord) DocumentLabel() string { return "Payroll Record" }
func (r *PayrollRecord) RecordStatus() string { return r.Status }

func (r *PayrollRecord) Lines() []RecordLine {
	desc := "Payroll disbursement"
	if TransactionType(r.RecordType) == TxPayrollNet {
		desc = "Net pay"
	}
	if r.Reference != "" {
		desc += " " + r.Reference
	}
	return []RecordLine{{
		Type:        TransactionType(r.RecordType),
		Amount:      r.Amount,
		Description: desc,
		Reference:   r.Reference,
	}}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
