package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSalesOrderLines(t *testing.T) {
	t.Parallel()

	order := &SalesOrder{
		ID:             "so-1",
		OrderNumber:    "SO-1",
		FinalPrice:     decimal.NewFromInt(5000),
		DiscountAmount: decimal.NewFromInt(300),
	}

	lines := order.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected invoice and discount lines, got %d", len(lines))
	}
	if lines[0].Type != TxInvoice || lines[0].Suffix != "" {
		t.Fatalf("unexpected primary line %+v", lines[0])
	}
	if lines[1].Type != TxDiscount || lines[1].Suffix != "discount" {
		t.Fatalf("unexpected discount line %+v", lines[1])
	}

	order.DiscountAmount = decimal.Zero
	order.FreightCharges = decimal.NewFromInt(40)
	lines = order.Lines()
	if len(lines) != 2 || lines[1].Type != TxFreight {
		t.Fatalf("expected freight line, got %+v", lines)
	}
}

func TestPurchaseOrderLinesOmitZeroTax(t *testing.T) {
	t.Parallel()

	po := &PurchaseOrder{ID: "po-1", PONumber: "PO-1", TotalAmount: decimal.NewFromInt(100)}
	if n := len(po.Lines()); n != 1 {
		t.Fatalf("expected 1 line without tax, got %d", n)
	}

	po.TaxAmount = decimal.NewFromInt(18)
	if n := len(po.Lines()); n != 2 {
		t.Fatalf("expected 2 lines with tax, got %d", n)
	}
}

func TestPayrollRecordUsesStoredType(t *testing.T) {
	t.Parallel()

	rec := &PayrollRecord{ID: "pr-1", RecordType: "bonus", Amount: decimal.NewFromInt(10)}
	if got := rec.Lines()[0].Type; got != TransactionType("bonus") {
		t.Fatalf("expected stored type to pass through, got %q", got)
	}
}
