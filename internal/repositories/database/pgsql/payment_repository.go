package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	"github.com/schoolworks/fees_ledger_app/internal/models"
	"github.com/schoolworks/fees_ledger_app/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
	txm            portsrepo.TransactionManager
	assignmentRepo portsrepo.AssignmentRepositoryFacade
}

// newPgxPaymentRepository creates a new repository for the payment journal.
func newPgxPaymentRepository(pool *pgxpool.Pool, assignmentRepo portsrepo.AssignmentRepositoryFacade) portsrepo.PaymentRepositoryFacade {
	base := BaseRepository{Pool: pool}
	return &PgxPaymentRepository{
		BaseRepository: base,
		txm:            &base,
		assignmentRepo: assignmentRepo,
	}
}

// Ensure PgxPaymentRepository implements the facade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, receipt_number, assignment_id, student_id, amount, method, reference, payment_date, recorded_by, notes, created_at, created_by, last_updated_at, last_updated_by`

// RecordPayment persists the payment and the ledger update as one database
// transaction:
//
//  1. row-lock the assignment (serializes concurrent recorders),
//  2. recheck the remaining balance under the lock,
//  3. insert the immutable payment row (unique receipt_number),
//  4. write the new cumulative paid amount and status,
//  5. commit.
//
// Any failure before commit rolls everything back, so neither the payment nor
// the ledger mutation can be durably committed alone. A commit error is
// reported as ErrPartialFailure because its outcome is indeterminate.
func (r *PgxPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment) (*domain.StudentFeeAssignment, error) {
	tx, err := r.txm.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits.
	defer r.txm.Rollback(ctx, tx)

	assignment, err := r.assignmentRepo.FindAssignmentForUpdate(ctx, tx, payment.AssignmentID)
	if err != nil {
		return nil, err
	}

	remaining := assignment.Balance()
	if payment.Amount.GreaterThan(remaining) {
		return nil, fmt.Errorf("%w: amount %s exceeds remaining balance %s on assignment %s",
			apperrors.ErrOverpayment, payment.Amount.String(), remaining.String(), payment.AssignmentID)
	}

	m := mapping.ToModelPayment(payment)
	insertQuery := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.PaymentID,
		m.ReceiptNumber,
		m.AssignmentID,
		m.StudentID,
		m.Amount,
		m.Method,
		m.Reference,
		m.PaymentDate,
		m.RecordedBy,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: receipt number %s already issued", apperrors.ErrConflict, m.ReceiptNumber)
		}
		return nil, apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, translateErr(err))
	}

	newPaid := assignment.AmountPaid.Add(payment.Amount)
	newStatus := domain.DeriveStatus(assignment.AmountDue, newPaid, assignment.DueDate, payment.PaymentDate)
	if err := r.assignmentRepo.ApplyPaymentInTx(ctx, tx, payment.AssignmentID, newPaid, newStatus, payment.RecordedBy, payment.CreatedAt); err != nil {
		return nil, err
	}

	if err := r.txm.Commit(ctx, tx); err != nil {
		// The commit outcome is unknown: the payment may or may not be durable.
		return nil, fmt.Errorf("%w: commit failed for payment %s: %v", apperrors.ErrPartialFailure, m.PaymentID, err)
	}

	assignment.AmountPaid = newPaid
	assignment.Status = newStatus
	assignment.LastUpdatedAt = payment.CreatedAt
	assignment.LastUpdatedBy = payment.RecordedBy
	return assignment, nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, translateErr(err))
	}

	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// FindPaymentsByAssignment retrieves all payments against one assignment in
// journal order.
func (r *PgxPaymentRepository) FindPaymentsByAssignment(ctx context.Context, assignmentID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE assignment_id = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, assignmentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for assignment "+assignmentID, translateErr(err))
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row for assignment "+assignmentID, err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows for assignment "+assignmentID, translateErr(err))
	}

	return mapping.ToDomainPaymentSlice(payments), nil
}

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.ReceiptNumber,
		&m.AssignmentID,
		&m.StudentID,
		&m.Amount,
		&m.Method,
		&m.Reference,
		&m.PaymentDate,
		&m.RecordedBy,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
