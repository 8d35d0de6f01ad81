package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssignmentReader defines read operations for the assignment ledger.
type AssignmentReader interface {
	// FindAssignmentByID retrieves an assignment by its unique identifier.
	FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.StudentFeeAssignment, error)

	// ListAssignmentsByStudent retrieves all assignments for one student, newest first.
	ListAssignmentsByStudent(ctx context.Context, studentID string) ([]domain.StudentFeeAssignment, error)

	// ListAssignmentsByStructure retrieves all assignments issued from one structure.
	ListAssignmentsByStructure(ctx context.Context, structureID string) ([]domain.StudentFeeAssignment, error)
}

// AssignmentWriter defines write operations for the assignment ledger.
type AssignmentWriter interface {
	// SaveAssignment inserts a new assignment. A duplicate (structure, student)
	// pair fails with ErrDuplicate.
	SaveAssignment(ctx context.Context, assignment domain.StudentFeeAssignment) error

	// FindAssignmentForUpdate row-locks an assignment inside the given
	// transaction so the overpayment check and balance write are serialized.
	FindAssignmentForUpdate(ctx context.Context, tx pgx.Tx, assignmentID string) (*domain.StudentFeeAssignment, error)

	// ApplyPaymentInTx sets the new cumulative paid amount and status on a
	// row-locked assignment. Must only be called with the lock held.
	ApplyPaymentInTx(ctx context.Context, tx pgx.Tx, assignmentID string, newPaid decimal.Decimal, status domain.FeeStatus, actorID string, now time.Time) error

	// SweepOverdue transitions every assignment that is unpaid and past due as
	// of asOf to OVERDUE, rechecking the predicate at write time. Returns the
	// number of assignments transitioned. Idempotent.
	SweepOverdue(ctx context.Context, asOf time.Time, actorID string) (int, error)
}

// AssignmentRepositoryFacade combines all assignment repository interfaces.
type AssignmentRepositoryFacade interface {
	AssignmentReader
	AssignmentWriter
}
