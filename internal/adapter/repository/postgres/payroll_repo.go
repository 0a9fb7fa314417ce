package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/partyledger/internal/domain"
)

// PayrollEntryRepository implements usecase.PayrollEntryRepository.
type PayrollEntryRepository struct {
	db Querier
}

// NewPayrollEntryRepository creates a new PayrollEntryRepository.
func NewPayrollEntryRepository(db Querier) *PayrollEntryRepository {
	return &PayrollEntryRepository{db: db}
}

// ListByEmployee returns the employee's salary accruals inside the window.
func (r *PayrollEntryRepository) ListByEmployee(ctx context.Context, employeeID string, window domain.FetchWindow) ([]*domain.PayrollEntry, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, employee_id, period, pay_date, gross_salary, total_deductions, status
  FROM payroll_entries
 WHERE employee_id = $1
   AND `+windowPredicate("pay_date")+`
 ORDER BY pay_date, id`,
		employeeID, window.From(), window.Until(), window.AsOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.PayrollEntry
	for rows.Next() {
		var amounts amountReader
		var (
			e                 domain.PayrollEntry
			date              *time.Time
			gross, deductions pgtype.Numeric
		)
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Period, &date, &gross, &deductions, &e.Status); err != nil {
			return nil, err
		}
		e.PayDate = utcPtr(date)
		e.GrossSalary = amounts.read("gross_salary", gross)
		e.TotalDeductions = amounts.read("total_deductions", deductions)
		if err := amounts.check("payroll_entries", e.ID); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// PayrollRecordRepository implements usecase.PayrollRecordRepository.
type PayrollRecordRepository struct {
	db Querier
}

// NewPayrollRecordRepository creates a new PayrollRecordRepository.
func NewPayrollRecordRepository(db Querier) *PayrollRecordRepository {
	return &PayrollRecordRepository{db: db}
}

// ListByEmployee returns the employee's payroll ledger rows inside the
// window. record_type is returned untouched.
func (r *PayrollRecordRepository) ListByEmployee(ctx context.Context, employeeID string, window domain.FetchWindow) ([]*domain.PayrollRecord, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, employee_id, record_type, record_date, amount, COALESCE(reference, ''), status
  FROM payroll_records
 WHERE employee_id = $1
   AND `+windowPredicate("record_date")+`
 ORDER BY record_date, id`,
		employeeID, window.From(), window.Until(), window.AsOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.PayrollRecord
	for rows.Next() {
		var amounts amountReader
		var (
			rec    domain.PayrollRecord
			date   *time.Time
			amount pgtype.Numeric
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.RecordType, &date, &amount, &rec.Reference, &rec.Status); err != nil {
			return nil, err
		}
		rec.RecordDate = utcPtr(date)
		rec.Amount = amounts.read("amount", amount)
		if err := amounts.check("payroll_records", rec.ID); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}
