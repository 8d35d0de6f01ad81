package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	"github.com/schoolworks/fees_ledger_app/internal/models"
	"github.com/schoolworks/fees_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface.
// All queries are plain reads; they never block the payment recorder.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTotalCollected sums payment amounts matching the filter. The fee type
// filter reaches through the assignment to its structure.
func (r *reportingRepository) GetTotalCollected(ctx context.Context, filter portsrepo.CollectionFilter) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM payments p
		JOIN student_fee_assignments a ON p.assignment_id = a.assignment_id
		JOIN fee_structures s ON a.structure_id = s.structure_id
	`
	where, args := collectionWhere(filter, "p.payment_date", "s.fee_type")
	query += where + ";"

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum collected payments", translateErr(err))
	}
	return total, nil
}

// GetTotalPending sums outstanding balances over assignments not yet paid off.
// A balance has no date of its own, so only the fee type filter applies here.
func (r *reportingRepository) GetTotalPending(ctx context.Context, filter portsrepo.CollectionFilter) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(a.amount_due - a.amount_paid), 0)
		FROM student_fee_assignments a
		JOIN fee_structures s ON a.structure_id = s.structure_id
		WHERE a.status <> 'PAID'
	`
	args := []interface{}{}
	if filter.FeeType != "" {
		args = append(args, string(filter.FeeType))
		query += ` AND s.fee_type = $1`
	}
	query += ";"

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum pending balances", translateErr(err))
	}
	return total, nil
}

// GetOverdueCount counts assignments currently marked OVERDUE. Like
// GetTotalPending this is a snapshot; the date range does not apply.
func (r *reportingRepository) GetOverdueCount(ctx context.Context, filter portsrepo.CollectionFilter) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM student_fee_assignments a
		JOIN fee_structures s ON a.structure_id = s.structure_id
		WHERE a.status = 'OVERDUE'
	`
	args := []interface{}{}
	if filter.FeeType != "" {
		args = append(args, string(filter.FeeType))
		query += ` AND s.fee_type = $1`
	}
	query += ";"

	var count int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count overdue assignments", translateErr(err))
	}
	return count, nil
}

// GetPaymentsByMonth retrieves the payments of one calendar month, oldest first.
func (r *reportingRepository) GetPaymentsByMonth(ctx context.Context, year int, month time.Month) ([]domain.Payment, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE payment_date >= $1 AND payment_date < $2
		ORDER BY payment_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for month "+start.Format("2006-01"), translateErr(err))
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row for monthly report", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating monthly payment rows", translateErr(err))
	}

	return mapping.ToDomainPaymentSlice(payments), nil
}

// GetCollectionByFeeType breaks collected totals down per fee type.
func (r *reportingRepository) GetCollectionByFeeType(ctx context.Context, filter portsrepo.CollectionFilter) ([]domain.FeeTypeCollection, error) {
	query := `
		SELECT s.fee_type, COALESCE(SUM(p.amount), 0), COUNT(p.payment_id)
		FROM payments p
		JOIN student_fee_assignments a ON p.assignment_id = a.assignment_id
		JOIN fee_structures s ON a.structure_id = s.structure_id
	`
	where, args := collectionWhere(filter, "p.payment_date", "s.fee_type")
	query += where + ` GROUP BY s.fee_type ORDER BY s.fee_type;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query collection by fee type", translateErr(err))
	}
	defer rows.Close()

	result := []domain.FeeTypeCollection{}
	for rows.Next() {
		var row domain.FeeTypeCollection
		var feeType string
		if err := rows.Scan(&feeType, &row.Collected, &row.Payments); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fee type collection row", err)
		}
		row.FeeType = domain.FeeType(feeType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating fee type collection rows", translateErr(err))
	}

	return result, nil
}

// collectionWhere builds the shared WHERE clause for date-range and fee-type
// filtered payment aggregates.
func collectionWhere(filter portsrepo.CollectionFilter, dateColumn, feeTypeColumn string) (string, []interface{}) {
	clauses := ""
	args := []interface{}{}
	add := func(condition string, value interface{}) {
		if clauses == "" {
			clauses = " WHERE "
		} else {
			clauses += " AND "
		}
		args = append(args, value)
		clauses += condition + " $" + strconv.Itoa(len(args))
	}
	if !filter.From.IsZero() {
		add(dateColumn+" >=", filter.From)
	}
	if !filter.To.IsZero() {
		add(dateColumn+" <=", filter.To)
	}
	if filter.FeeType != "" {
		add(feeTypeColumn+" =", string(filter.FeeType))
	}
	return clauses, args
}
