package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/partyledger/internal/domain"
)

// SalesOrderRepository implements usecase.SalesOrderRepository.
type SalesOrderRepository struct {
	db Querier
}

// NewSalesOrderRepository creates a new SalesOrderRepository.
func NewSalesOrderRepository(db Querier) *SalesOrderRepository {
	return &SalesOrderRepository{db: db}
}

// ListByCustomer returns the customer's sales orders inside the window.
func (r *SalesOrderRepository) ListByCustomer(ctx context.Context, customerID string, window domain.FetchWindow) ([]*domain.SalesOrder, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, order_number, customer_id, order_date, final_price, discount_amount, freight_charges, status
  FROM sales_orders
 WHERE customer_id = $1
   AND `+windowPredicate("order_date")+`
 ORDER BY order_date, id`,
		customerID, window.From(), window.Until(), window.AsOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.SalesOrder
	for rows.Next() {
		var amounts amountReader
		var (
			o                        domain.SalesOrder
			date                     *time.Time
			price, discount, freight pgtype.Numeric
		)
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &date, &price, &discount, &freight, &o.Status); err != nil {
			return nil, err
		}
		o.OrderDate = utcPtr(date)
		o.FinalPrice = amounts.read("final_price", price)
		o.DiscountAmount = amounts.read("discount_amount", discount)
		o.FreightCharges = amounts.read("freight_charges", freight)
		if err := amounts.check("sales_orders", o.ID); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

// InvoiceRepository implements usecase.InvoiceRepository.
type InvoiceRepository struct {
	db Querier
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(db Querier) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// ListStandaloneByCustomer returns invoices raised without a sales order.
// Invoices of a sales order are already represented by the order.
func (r *InvoiceRepository) ListStandaloneByCustomer(ctx context.Context, customerID string, window domain.FetchWindow) ([]*domain.Invoice, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, invoice_number, customer_id, invoice_date, total_amount, status
  FROM invoices
 WHERE customer_id = $1
   AND sales_order_id IS NULL
   AND `+windowPredicate("invoice_date")+`
 ORDER BY invoice_date, id`,
		customerID, window.From(), window.Until(), window.AsOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		var amounts amountReader
		var (
			inv   domain.Invoice
			date  *time.Time
			total pgtype.Numeric
		)
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.CustomerID, &date, &total, &inv.Status); err != nil {
			return nil, err
		}
		inv.InvoiceDate = utcPtr(date)
		inv.TotalAmount = amounts.read("total_amount", total)
		if err := amounts.check("invoices", inv.ID); err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}

	return invoices, rows.Err()
}

// ListIDsByCustomer returns the ids of every invoice of the customer,
// whether linked through a sales order or standalone.
func (r *InvoiceRepository) ListIDsByCustomer(ctx context.Context, customerID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
SELECT i.id
  FROM invoices i
  LEFT JOIN sales_orders so ON so.id = i.sales_order_id
 WHERE i.customer_id = $1 OR so.customer_id = $1
 ORDER BY i.id`,
		customerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	db Querier
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db Querier) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// ListByInvoiceIDs returns payments against any of the given invoices
// inside the window.
func (r *PaymentRepository) ListByInvoiceIDs(ctx context.Context, invoiceIDs []string, window domain.FetchWindow) ([]*domain.Payment, error) {
	if len(invoiceIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
SELECT p.id, p.payment_number, p.invoice_id, COALESCE(i.invoice_number, ''), p.payment_date, p.amount,
       COALESCE(p.payment_method, ''), COALESCE(p.reference_number, ''), p.status
  FROM payments p
  LEFT JOIN invoices i ON i.id = p.invoice_id
 WHERE p.invoice_id = ANY($1)
   AND ($2::timestamptz IS NULL OR p.payment_date >= $2)
   AND ($3::timestamptz IS NULL OR p.payment_date < $3)
   AND p.created_at <= $4
   AND p.status <> 'cancelled'
 ORDER BY p.payment_date, p.id`,
		invoiceIDs, window.From(), window.Until(), window.AsOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		var amounts amountReader
		var (
			p      domain.Payment
			date   *time.Time
			amount pgtype.Numeric
		)
		if err := rows.Scan(&p.ID, &p.PaymentNumber, &p.InvoiceID, &p.InvoiceNumber, &date, &amount,
			&p.PaymentMethod, &p.ReferenceNumber, &p.Status); err != nil {
			return nil, err
		}
		p.PaymentDate = utcPtr(date)
		p.Amount = amounts.read("amount", amount)
		if err := amounts.check("payments", p.ID); err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}

	return payments, rows.Err()
}
