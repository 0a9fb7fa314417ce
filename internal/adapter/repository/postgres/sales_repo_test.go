package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/partyledger/internal/domain"
)

func TestSalesOrderRepositoryListByCustomer(t *testing.T) {
	pool := newMockPool(t)
	window := testWindow()

	rows := pgxmock.NewRows([]string{"id", "order_number", "customer_id", "order_date", "final_price", "discount_amount", "freight_charges", "status"}).
		AddRow("so-1", "SO-0001", "CUST-1", at(2024, 3, 1), "5000.00", "300.00", "0", "confirmed")

	pool.ExpectQuery(`FROM sales_orders`).
		WithArgs(testWindowArgs("CUST-1")...).
		WillReturnRows(rows)

	repo := NewSalesOrderRepository(pool)
	orders, err := repo.ListByCustomer(context.Background(), "CUST-1", window)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "so-1", o.ID)
	assert.Equal(t, "SO-0001", o.OrderNumber)
	assert.True(t, o.FinalPrice.Equal(decimal.NewFromInt(5000)))
	assert.True(t, o.DiscountAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, o.FreightCharges.IsZero())
	require.NotNil(t, o.OrderDate)
	assert.Equal(t, *at(2024, 3, 1), *o.OrderDate)
	assertExpectations(t, pool)
}

func TestSalesOrderRepositoryQueryError(t *testing.T) {
	pool := newMockPool(t)
	queryErr := errors.New("connection reset")
	pool.ExpectQuery(`FROM sales_orders`).WillReturnError(queryErr)

	repo := NewSalesOrderRepository(pool)
	_, err := repo.ListByCustomer(context.Background(), "CUST-1", testWindow())
	assert.ErrorIs(t, err, queryErr)
}

func TestInvoiceRepositoryListStandaloneByCustomer(t *testing.T) {
	pool := newMockPool(t)

	rows := pgxmock.NewRows([]string{"id", "invoice_number", "customer_id", "invoice_date", "total_amount", "status"}).
		AddRow("inv-9", "INV-9", "CUST-1", at(2024, 5, 2), "120.50", "issued")

	pool.ExpectQuery(`sales_order_id IS NULL`).
		WithArgs(testWindowArgs("CUST-1")...).
		WillReturnRows(rows)

	repo := NewInvoiceRepository(pool)
	invoices, err := repo.ListStandaloneByCustomer(context.Background(), "CUST-1", testWindow())
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-9", invoices[0].InvoiceNumber)
	assert.True(t, invoices[0].TotalAmount.Equal(decimal.RequireFromString("120.50")))
	assertExpectations(t, pool)
}

func TestInvoiceRepositoryListIDsByCustomer(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery(`LEFT JOIN sales_orders`).
		WithArgs("CUST-1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("inv-1").AddRow("inv-2"))

	repo := NewInvoiceRepository(pool)
	ids, err := repo.ListIDsByCustomer(context.Background(), "CUST-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"inv-1", "inv-2"}, ids)
	assertExpectations(t, pool)
}

func TestPaymentRepositoryListByInvoiceIDs(t *testing.T) {
	pool := newMockPool(t)
	ids := []string{"inv-1", "inv-2"}

	rows := pgxmock.NewRows([]string{"id", "payment_number", "invoice_id", "invoice_number", "payment_date", "amount", "payment_method", "reference_number", "status"}).
		AddRow("pay-1", "PAY-1", "inv-1", "INV-1", at(2024, 4, 10), "4000", "bank_transfer", "TRX-77", "completed")

	pool.ExpectQuery(`invoice_id = ANY\(\$1\)`).
		WithArgs(testWindowArgs(ids)...).
		WillReturnRows(rows)

	repo := NewPaymentRepository(pool)
	payments, err := repo.ListByInvoiceIDs(context.Background(), ids, testWindow())
	require.NoError(t, err)
	require.Len(t, payments, 1)

	p := payments[0]
	assert.Equal(t, "INV-1", p.InvoiceNumber)
	assert.Equal(t, "TRX-77", p.ReferenceNumber)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(4000)))
	assertExpectations(t, pool)
}

func TestPaymentRepositorySkipsQueryWithoutInvoices(t *testing.T) {
	pool := newMockPool(t)

	repo := NewPaymentRepository(pool)
	payments, err := repo.ListByInvoiceIDs(context.Background(), nil, testWindow())
	require.NoError(t, err)
	assert.Empty(t, payments)
	assertExpectations(t, pool)
}

func TestSalesOrderRepositoryLastDayIsInclusive(t *testing.T) {
	pool := newMockPool(t)
	window := domain.FetchWindow{
		Range: domain.DateRange{From: at(2024, 3, 1), To: at(2024, 3, 31)},
		AsOf:  testAsOf,
	}
	lateEvening := time.Date(2024, 3, 31, 23, 45, 0, 0, time.UTC)

	pool.ExpectQuery(`order_date < \$3`).
		WithArgs("CUST-1", timeArg{at(2024, 3, 1)}, timeArg{at(2024, 4, 1)}, testAsOf).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_number", "customer_id", "order_date", "final_price", "discount_amount", "freight_charges", "status"}).
			AddRow("so-31", "SO-0031", "CUST-1", &lateEvening, "10", "0", "0", "confirmed"))

	repo := NewSalesOrderRepository(pool)
	orders, err := repo.ListByCustomer(context.Background(), "CUST-1", window)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.True(t, orders[0].OrderDate.Before(*window.Until()))
	assert.True(t, window.Range.Contains(*orders[0].OrderDate))
	assertExpectations(t, pool)
}

func TestSalesOrderRepositoryOpenWindow(t *testing.T) {
	pool := newMockPool(t)
	window := domain.FetchWindow{AsOf: testAsOf}

	pool.ExpectQuery(`FROM sales_orders`).
		WithArgs("CUST-1", timeArg{nil}, timeArg{nil}, testAsOf).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_number", "customer_id", "order_date", "final_price", "discount_amount", "freight_charges", "status"}))

	repo := NewSalesOrderRepository(pool)
	orders, err := repo.ListByCustomer(context.Background(), "CUST-1", window)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assertExpectations(t, pool)
}

func TestSalesOrderRepositoryRejectsNaNAmount(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery(`FROM sales_orders`).
		WithArgs(testWindowArgs("CUST-1")...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_number", "customer_id", "order_date", "final_price", "discount_amount", "freight_charges", "status"}).
			AddRow("so-bad", "SO-0666", "CUST-1", at(2024, 3, 1), "NaN", "0", "0", "confirmed"))

	repo := NewSalesOrderRepository(pool)
	orders, err := repo.ListByCustomer(context.Background(), "CUST-1", testWindow())

	require.ErrorIs(t, err, ErrNonFiniteAmount)
	assert.Contains(t, err.Error(), "so-bad")
	assert.Contains(t, err.Error(), "final_price")
	assert.Nil(t, orders)
}
