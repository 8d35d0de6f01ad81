package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolworks/fees_ledger_app/internal/apperrors"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolworks/fees_ledger_app/internal/core/ports/repositories"
	"github.com/schoolworks/fees_ledger_app/internal/models"
	"github.com/schoolworks/fees_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxAssignmentRepository struct {
	BaseRepository
}

// newPgxAssignmentRepository creates a new repository for the assignment ledger.
func newPgxAssignmentRepository(pool *pgxpool.Pool) portsrepo.AssignmentRepositoryFacade {
	return &PgxAssignmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAssignmentRepository implements the facade
var _ portsrepo.AssignmentRepositoryFacade = (*PgxAssignmentRepository)(nil)

const assignmentColumns = `assignment_id, structure_id, student_id, amount_due, amount_paid, due_date, status, created_at, created_by, last_updated_at, last_updated_by`

func scanAssignment(row pgx.Row) (models.StudentFeeAssignment, error) {
	var m models.StudentFeeAssignment
	err := row.Scan(
		&m.AssignmentID,
		&m.StructureID,
		&m.StudentID,
		&m.AmountDue,
		&m.AmountPaid,
		&m.DueDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAssignment inserts a new assignment. unique(structure_id, student_id)
// rejects assigning the same structure to the same student twice.
func (r *PgxAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.StudentFeeAssignment) error {
	m := mapping.ToModelAssignment(assignment)

	query := `
		INSERT INTO student_fee_assignments (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AssignmentID,
		m.StructureID,
		m.StudentID,
		m.AmountDue,
		m.AmountPaid,
		m.DueDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: structure %s is already assigned to student %s", apperrors.ErrDuplicate, m.StructureID, m.StudentID)
		}
		if isFKViolation(err) {
			return fmt.Errorf("%w: structure or student referenced by assignment %s", apperrors.ErrNotFound, m.AssignmentID)
		}
		return apperrors.NewAppError(500, "failed to save assignment "+m.AssignmentID, translateErr(err))
	}
	return nil
}

// FindAssignmentByID retrieves an assignment by its ID.
func (r *PgxAssignmentRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.StudentFeeAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM student_fee_assignments WHERE assignment_id = $1;`

	m, err := scanAssignment(r.Pool.QueryRow(ctx, query, assignmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find assignment by ID "+assignmentID, translateErr(err))
	}

	d := mapping.ToDomainAssignment(m)
	return &d, nil
}

// FindAssignmentForUpdate row-locks an assignment inside the given transaction.
// Concurrent payment recorders against the same assignment queue up here, so
// the overpayment recheck always sees the latest committed balance.
func (r *PgxAssignmentRepository) FindAssignmentForUpdate(ctx context.Context, tx pgx.Tx, assignmentID string) (*domain.StudentFeeAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM student_fee_assignments WHERE assignment_id = $1 FOR UPDATE;`

	m, err := scanAssignment(tx.QueryRow(ctx, query, assignmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock assignment "+assignmentID, translateErr(err))
	}

	d := mapping.ToDomainAssignment(m)
	return &d, nil
}

// ApplyPaymentInTx writes the new cumulative paid amount and derived status on
// an assignment that the caller has already locked with FindAssignmentForUpdate.
func (r *PgxAssignmentRepository) ApplyPaymentInTx(ctx context.Context, tx pgx.Tx, assignmentID string, newPaid decimal.Decimal, status domain.FeeStatus, actorID string, now time.Time) error {
	query := `
		UPDATE student_fee_assignments
		SET amount_paid = $2,
		    status = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE assignment_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, assignmentID, newPaid, status, now, actorID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to apply payment to assignment "+assignmentID, translateErr(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("assignment " + assignmentID + " not found for payment")
	}
	return nil
}

// SweepOverdue transitions unpaid, past-due assignments to OVERDUE. The
// predicate is part of the UPDATE itself, so a payment that lands between a
// sweep's read and write can never be clobbered: a row that became PAID no
// longer matches amount_paid < amount_due and is skipped.
func (r *PgxAssignmentRepository) SweepOverdue(ctx context.Context, asOf time.Time, actorID string) (int, error) {
	query := `
		UPDATE student_fee_assignments
		SET status = $1,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE amount_paid < amount_due
		  AND due_date < $4
		  AND status <> $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, models.FeeStatus(domain.StatusOverdue), asOf, actorID, asOf)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to sweep overdue assignments", translateErr(err))
	}
	return int(cmdTag.RowsAffected()), nil
}

// ListAssignmentsByStudent retrieves all assignments for one student.
func (r *PgxAssignmentRepository) ListAssignmentsByStudent(ctx context.Context, studentID string) ([]domain.StudentFeeAssignment, error) {
	return r.listAssignments(ctx, `student_id`, studentID)
}

// ListAssignmentsByStructure retrieves all assignments issued from one structure.
func (r *PgxAssignmentRepository) ListAssignmentsByStructure(ctx context.Context, structureID string) ([]domain.StudentFeeAssignment, error) {
	return r.listAssignments(ctx, `structure_id`, structureID)
}

func (r *PgxAssignmentRepository) listAssignments(ctx context.Context, column, value string) ([]domain.StudentFeeAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM student_fee_assignments WHERE ` + column + ` = $1 ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, value)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query assignments by "+column, translateErr(err))
	}
	defer rows.Close()

	assignments := []models.StudentFeeAssignment{}
	for rows.Next() {
		m, err := scanAssignment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan assignment row", err)
		}
		assignments = append(assignments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating assignment rows", translateErr(err))
	}

	return mapping.ToDomainAssignmentSlice(assignments), nil
}
