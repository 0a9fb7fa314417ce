package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/partyledger/internal/domain"
)

// PurchaseOrderRepository implements usecase.PurchaseOrderRepository.
type PurchaseOrderRepository struct {
	db Querier
}

// NewPurchaseOrderRepository creates a new PurchaseOrderRepository.
func NewPurchaseOrderRepository(db Querier) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db}
}

// ListBySupplier returns the supplier's purchase orders inside the window.
func (r *PurchaseOrderRepository) ListBySupplier(ctx context.Context, supplierID string, window domain.FetchWindow) ([]*domain.PurchaseOrder, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, po_number, supplier_id, order_date, total_amount, tax_amount, status
  FROM purchase_orders
 WHERE supplier_id = $1
   AND `+windowPredicate("order_date")+`
 ORDER BY order_date, id`,
		supplierID, window.From(), window.Until(), window.AsOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.PurchaseOrder
	for rows.Next() {
		var amounts amountReader
		var (
			o          domain.PurchaseOrder
			date       *time.Time
			total, tax pgtype.Numeric
		)
		if err := rows.Scan(&o.ID, &o.PONumber, &o.SupplierID, &date, &total, &tax, &o.Status); err != nil {
			return nil, err
		}
		o.OrderDate = utcPtr(date)
		o.TotalAmount = amounts.read("total_amount", total)
		o.TaxAmount = amounts.read("tax_amount", tax)
		if err := amounts.check("purchase_orders", o.ID); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

// VendorPaymentRepository implements usecase.VendorPaymentRepository.
type VendorPaymentRepository struct {
	db Querier
}

// NewVendorPaymentRepository creates a new VendorPaymentRepository.
func NewVendorPaymentRepository(db Querier) *VendorPaymentRepository {
	return &VendorPaymentRepository{db: db}
}

// ListBySupplier returns payments made to the supplier inside the window.
func (r *VendorPaymentRepository) ListBySupplier(ctx context.Context, supplierID string, window domain.FetchWindow) ([]*domain.VendorPayment, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, payment_number, supplier_id, payment_date, amount,
       COALESCE(payment_method, ''), COALESCE(reference_number, ''), status
  FROM vendor_payments
 WHERE supplier_id = $1
   AND `+windowPredicate("payment_date")+`
 ORDER BY payment_date, id`,
		supplierID, window.From(), window.Until(), window.AsOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.VendorPayment
	for rows.Next() {
		var amounts amountReader
		var (
			p      domain.VendorPayment
			date   *time.Time
			amount pgtype.Numeric
		)
		if err := rows.Scan(&p.ID, &p.PaymentNumber, &p.SupplierID, &date, &amount,
			&p.PaymentMethod, &p.ReferenceNumber, &p.Status); err != nil {
			return nil, err
		}
		p.PaymentDate = utcPtr(date)
		p.Amount = amounts.read("amount", amount)
		if err := amounts.check("vendor_payments", p.ID); err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}

	return payments, rows.Err()
}

// VendorBillRepository implements usecase.VendorBillRepository.
type VendorBillRepository struct {
	db Querier
}

// NewVendorBillRepository creates a new VendorBillRepository.
func NewVendorBillRepository(db Querier) *VendorBillRepository {
	return &VendorBillRepository{db: db}
}

// ListBySupplier returns the supplier's bills inside the window.
func (r *VendorBillRepository) ListBySupplier(ctx context.Context, supplierID string, window domain.FetchWindow) ([]*domain.VendorBill, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, bill_number, supplier_id, bill_date, total_amount, status
  FROM vendor_bills
 WHERE supplier_id = $1
   AND `+windowPredicate("bill_date")+`
 ORDER BY bill_date, id`,
		supplierID, window.From(), window.Until(), window.AsOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*domain.VendorBill
	for rows.Next() {
		var amounts amountReader
		var (
			b     domain.VendorBill
			date  *time.Time
			total pgtype.Numeric
		)
		if err := rows.Scan(&b.ID, &b.BillNumber, &b.SupplierID, &date, &total, &b.Status); err != nil {
			return nil, err
		}
		b.BillDate = utcPtr(date)
		b.TotalAmount = amounts.read("total_amount", total)
		if err := amounts.check("vendor_bills", b.ID); err != nil {
			return nil, err
		}
		bills = append(bills, &b)
	}

	return bills, rows.Err()
}
