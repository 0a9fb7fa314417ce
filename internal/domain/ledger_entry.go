package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger line. The sign a type carries
// depends on the party kind.
type TransactionType string

const (
	TxInvoice   TransactionType = "invoice"
	TxDiscount  TransactionType = "discount"
	TxFreight   TransactionType = "freight"
	TxPayment   TransactionType = "payment"
	TxBill      TransactionType = "bill"
	TxTax       TransactionType = "tax"
	TxExpense   TransactionType = "expense"
	TxSalary    TransactionType = "salary"
	TxDeduction TransactionType = "deduction"
	// TxPayroll is a payroll disbursement debited to the employee.
	TxPayroll TransactionType = "payroll"
	// TxPayrollNet is net pay owed to the employee.
	TxPayrollNet TransactionType = "payroll_net"
)

// LedgerEntry is one normalized debit or credit line of a statement.
// Balance is zero until the balance calculator assigns it.
type LedgerEntry struct {
	ID              string
	Date            time.Time
	Description     string
	Reference       string
	TransactionType TransactionType
	DebitAmount     decimal.Decimal
	CreditAmount    decimal.Decimal
	Balance         decimal.Decimal

	Source         SourceType
	SourceDocument string
	DocumentID     string
	Status         string
}

// Net returns debit minus credit.
func (e LedgerEntry) Net() decimal.Decimal {
	return e.DebitAmount.Sub(e.CreditAmount)
}
